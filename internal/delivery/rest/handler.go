package rest

import (
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	categories CategoryService
	questions  QuestionService
	quiz       QuizService
	db         Pinger
	picks      PickObserver
}

// NewHandler creates the HTTP handler. db may be nil when running without a database.
func NewHandler(
	logger *zap.Logger,
	categories CategoryService,
	questions QuestionService,
	quiz QuizService,
	db Pinger,
	picks PickObserver,
) *Handler {
	return &Handler{
		logger:     logger,
		categories: categories,
		questions:  questions,
		quiz:       quiz,
		db:         db,
		picks:      picks,
	}
}
