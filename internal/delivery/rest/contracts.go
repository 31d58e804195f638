package rest

import (
	"context"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/service"
)

type CategoryService interface {
	List(ctx context.Context) ([]entities.Category, error)
}

type QuestionService interface {
	Page(ctx context.Context, page int) (*service.QuestionPage, error)
	Search(ctx context.Context, term string) ([]entities.Question, error)
	Create(ctx context.Context, nq entities.NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
	ByCategory(ctx context.Context, categoryID int) (*entities.Category, []entities.Question, error)
	Count(ctx context.Context) (int, error)
}

type QuizService interface {
	PickNext(ctx context.Context, round entities.QuizRound) (*entities.Question, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PickObserver records quiz pick outcomes.
type PickObserver interface {
	ObservePick(outcome string)
}
