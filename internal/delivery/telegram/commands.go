package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/service"
	"github.com/aliskhannn/trivia-api/internal/storage"
)

// handleCategories lists categories with a keyboard to start a round.
func (h *Handler) handleCategories(ctx context.Context, chatID int64) error {
	categories, err := h.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		h.send(newHTMLMessage(chatID, msgNoCategories))
		return nil
	}

	msg := newHTMLMessage(chatID, formatCategories(categories))
	msg.ReplyMarkup = buildCategoriesKeyboard(categories)
	h.send(msg)
	return nil
}

// handlePlay starts a round in the category given as argument,
// or shows the category picker when no argument is given.
func (h *Handler) handlePlay(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		args = strings.TrimSpace(args)
		if args == "" {
			return h.handleCategories(ctx, chatID)
		}

		categoryID, err := strconv.Atoi(args)
		if err != nil || categoryID < 0 {
			h.send(newHTMLMessage(chatID, msgInvalidCategory))
			return nil
		}

		return h.startRound(ctx, chatID, categoryID)
	}
}

// handleStop ends the current round and reports the score.
func (h *Handler) handleStop(_ context.Context, chatID int64) error {
	round, ok := h.rounds.Get(chatID)
	if !ok {
		h.send(newHTMLMessage(chatID, msgNoActiveRound))
		return nil
	}

	h.rounds.Delete(chatID)
	h.send(newHTMLMessage(chatID, formatResult(round.Correct, round.Answered())))
	return nil
}

// handleAnswer checks a plain-text answer to the current question.
func (h *Handler) handleAnswer(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		round, ok := h.rounds.Get(chatID)
		if !ok || round.Current == nil {
			h.send(newHTMLMessage(chatID, msgNoActiveRound))
			return nil
		}

		if h.answers.Validate(text, round.Current.Answer) {
			round.Correct++
			h.send(newHTMLMessage(chatID, msgCorrect))
		} else {
			h.send(newHTMLMessage(chatID, fmt.Sprintf(msgWrongTemplate, esc(round.Current.Answer))))
		}

		round.Current = nil
		h.rounds.Store(chatID, round)

		return h.askNext(ctx, chatID)
	}
}

func (h *Handler) startRound(ctx context.Context, chatID int64, categoryID int) error {
	category := entities.QuizCategory{ID: categoryID}
	if !category.IsAll() {
		c, err := h.categories.Get(ctx, categoryID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				h.send(newHTMLMessage(chatID, msgUnknownCategory))
				return nil
			}
			return fmt.Errorf("get category: %w", err)
		}
		category.Type = c.Type
	}

	h.rounds.Store(chatID, storage.ChatRound{Category: category})
	h.send(newHTMLMessage(chatID, formatRoundStarted(category)))

	h.logger.Info("quiz round started",
		zap.Int64("chat_id", chatID),
		zap.Int("category_id", categoryID),
	)

	return h.askNext(ctx, chatID)
}

// askNext sends the next question of the chat's round, or finishes the round.
func (h *Handler) askNext(ctx context.Context, chatID int64) error {
	round, ok := h.rounds.Get(chatID)
	if !ok {
		h.send(newHTMLMessage(chatID, msgNoActiveRound))
		return nil
	}

	category := round.Category
	q, err := h.quiz.PickNext(ctx, entities.QuizRound{
		PreviousQuestionIDs: round.Asked,
		Category:            &category,
	})
	if err != nil {
		return fmt.Errorf("pick next question: %w", err)
	}

	if q == nil {
		h.rounds.Delete(chatID)
		if len(round.Asked) == 0 {
			h.send(newHTMLMessage(chatID, msgNoQuestions))
			return nil
		}
		h.send(newHTMLMessage(chatID, formatResult(round.Correct, round.Answered())))
		return nil
	}

	round.Current = q
	round.Asked = append(round.Asked, q.ID)
	h.rounds.Store(chatID, round)

	msg := newHTMLMessage(chatID, formatQuestion(q, len(round.Asked)))
	msg.ReplyMarkup = buildQuestionKeyboard(q.ID)
	h.send(msg)
	return nil
}
