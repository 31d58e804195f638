package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

// QuizService picks the next question of a quiz round.
type QuizService struct {
	questions  QuestionRepository
	categories CategoryRepository

	intn func(n int) int
}

// NewQuizService creates a new QuizService.
func NewQuizService(questions QuestionRepository, categories CategoryRepository) *QuizService {
	return &QuizService{
		questions:  questions,
		categories: categories,
		intn:       rand.IntN,
	}
}

// PickNext returns a random question of the round's category that was not
// asked before. A nil question with a nil error means the round is over.
//
// A round without a category is ErrUnprocessable; a category that does not
// exist is ErrNotFound. Category ID 0 selects from every category.
func (s *QuizService) PickNext(ctx context.Context, round entities.QuizRound) (*entities.Question, error) {
	if round.Category == nil {
		return nil, fmt.Errorf("%w: quiz category is required", ErrUnprocessable)
	}

	if !round.Category.IsAll() {
		exists, err := s.categories.Exists(ctx, round.Category.ID)
		if err != nil {
			return nil, fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("category %d: %w", round.Category.ID, ErrNotFound)
		}
	}

	candidates, err := s.questions.FindQuestions(ctx, round.Filter())
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	candidates = excludeAsked(candidates, round.PreviousQuestionIDs)
	if len(candidates) == 0 {
		return nil, nil
	}

	q := candidates[s.intn(len(candidates))]
	return &q, nil
}

// excludeAsked drops questions whose IDs are in asked.
func excludeAsked(questions []entities.Question, asked []int) []entities.Question {
	if len(asked) == 0 {
		return questions
	}

	seen := make(map[int]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	out := make([]entities.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}
