package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/repository"
)

// QuestionPage is one page of questions plus the overall question count.
type QuestionPage struct {
	Questions []entities.Question
	Total     int
}

type QuestionService struct {
	questions  QuestionRepository
	categories CategoryRepository
	perPage    int
}

func NewQuestionService(questions QuestionRepository, categories CategoryRepository, perPage int) *QuestionService {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	return &QuestionService{
		questions:  questions,
		categories: categories,
		perPage:    perPage,
	}
}

// Page returns the requested page of questions ordered by ID.
// An empty page yields ErrNotFound.
func (s *QuestionService) Page(ctx context.Context, page int) (*QuestionPage, error) {
	limit, offset, ok := Paginate(page, s.perPage)
	if !ok {
		return nil, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}

	questions, err := s.questions.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

// Search returns questions containing term, case-insensitively.
func (s *QuestionService) Search(ctx context.Context, term string) ([]entities.Question, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// Create validates and stores a new question, returning its ID.
func (s *QuestionService) Create(ctx context.Context, nq entities.NewQuestion) (int, error) {
	nq.Question = strings.TrimSpace(nq.Question)
	nq.Answer = strings.TrimSpace(nq.Answer)

	switch {
	case nq.Question == "":
		return 0, fmt.Errorf("%w: question is required", ErrUnprocessable)
	case nq.Answer == "":
		return 0, fmt.Errorf("%w: answer is required", ErrUnprocessable)
	case nq.Difficulty < entities.MinDifficulty || nq.Difficulty > entities.MaxDifficulty:
		return 0, fmt.Errorf("%w: difficulty must be between %d and %d",
			ErrUnprocessable, entities.MinDifficulty, entities.MaxDifficulty)
	}

	id, err := s.questions.Create(ctx, nq)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return 0, fmt.Errorf("%w: category %d does not exist", ErrUnprocessable, nq.CategoryID)
		}
		return 0, fmt.Errorf("create question: %w", err)
	}

	return id, nil
}

// Delete removes a question. Unknown IDs yield ErrNotFound.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

// ByCategory returns a category with all of its questions.
func (s *QuestionService) ByCategory(ctx context.Context, categoryID int) (*entities.Category, []entities.Question, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("get category: %w", err)
	}

	questions, err := s.questions.FindQuestions(ctx, entities.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, nil, fmt.Errorf("find questions: %w", err)
	}

	return category, questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int, error) {
	total, err := s.questions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}
