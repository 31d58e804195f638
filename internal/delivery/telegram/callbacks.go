package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	data := decodeCallback(cb.Data)
	switch data.Action {
	case actionPlay:
		categoryID, ok := data.intParam(0)
		if !ok || categoryID < 0 {
			h.logger.Warn("invalid play callback", zap.String("data", cb.Data))
			return
		}
		_ = h.withErrorHandling(func(ctx context.Context, chatID int64) error {
			return h.startRound(ctx, chatID, categoryID)
		})(ctx, chatID)

	case actionSkip:
		questionID, ok := data.intParam(0)
		if !ok {
			h.logger.Warn("invalid skip callback", zap.String("data", cb.Data))
			return
		}
		_ = h.withErrorHandling(h.handleSkip(questionID))(ctx, chatID)

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}
}

// handleSkip reveals the answer to the current question and moves on.
// Stale buttons of earlier questions are ignored.
func (h *Handler) handleSkip(questionID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		round, ok := h.rounds.Get(chatID)
		if !ok || round.Current == nil || round.Current.ID != questionID {
			return nil
		}

		h.send(newHTMLMessage(chatID, fmt.Sprintf(msgSkippedTemplate, esc(round.Current.Answer))))

		round.Current = nil
		h.rounds.Store(chatID, round)

		return h.askNext(ctx, chatID)
	}
}
