package service

import (
	"context"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]entities.Category, error)
	GetByID(ctx context.Context, id int) (*entities.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type QuestionRepository interface {
	List(ctx context.Context, limit, offset int) ([]entities.Question, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, term string) ([]entities.Question, error)
	FindQuestions(ctx context.Context, filter entities.QuestionFilter) ([]entities.Question, error)
	Create(ctx context.Context, nq entities.NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
}

// CategoryCache caches the category list.
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]entities.Category, bool, error)
	SetCategories(ctx context.Context, categories []entities.Category) error
}
