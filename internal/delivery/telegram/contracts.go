package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/storage"
)

// Bot is the part of *tgbotapi.BotAPI used by the handler.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]entities.Category, error)
	Get(ctx context.Context, id int) (*entities.Category, error)
}

type QuizService interface {
	PickNext(ctx context.Context, round entities.QuizRound) (*entities.Question, error)
}

type AnswerValidator interface {
	Validate(userAnswer, correctAnswer string) bool
}

type RoundStorage interface {
	Store(chatID int64, round storage.ChatRound)
	Get(chatID int64) (storage.ChatRound, bool)
	Delete(chatID int64)
}
