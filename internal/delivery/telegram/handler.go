package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot        Bot
	logger     *zap.Logger
	categories CategoryService
	quiz       QuizService
	answers    AnswerValidator
	rounds     RoundStorage
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	categories CategoryService,
	quiz QuizService,
	answers AnswerValidator,
	rounds RoundStorage,
) *Handler {
	return &Handler{
		bot:        bot,
		logger:     logger,
		categories: categories,
		quiz:       quiz,
		answers:    answers,
		rounds:     rounds,
	}
}

// Commands lists the bot commands shown in the Telegram menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "categories", Description: "List quiz categories"},
		{Command: "play", Description: "Play a round (usage: /play 3)"},
		{Command: "stop", Description: "Stop the current round"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.send(newHTMLMessage(chatID, msgWelcome))

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		case "categories":
			_ = h.withErrorHandling(h.handleCategories)(ctx, chatID)

		case "play":
			_ = h.withErrorHandling(h.handlePlay(update.Message.CommandArguments()))(ctx, chatID)

		case "stop":
			_ = h.withErrorHandling(h.handleStop)(ctx, chatID)

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newHTMLMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
