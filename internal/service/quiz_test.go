package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/storage"
)

func newQuizFixture() *storage.MemoryStore {
	return storage.NewMemoryStore(
		[]entities.Category{
			{ID: 1, Type: "Science"},
			{ID: 14, Type: "Geography"},
			{ID: 20, Type: "Empty"},
		},
		[]entities.Question{
			{ID: 1, Question: "q1", Answer: "a1", CategoryID: 1, Difficulty: 1},
			{ID: 2, Question: "q2", Answer: "a2", CategoryID: 1, Difficulty: 2},
			{ID: 3, Question: "q3", Answer: "a3", CategoryID: 1, Difficulty: 3},
			{ID: 4, Question: "q4", Answer: "a4", CategoryID: 14, Difficulty: 4},
			{ID: 5, Question: "q5", Answer: "a5", CategoryID: 14, Difficulty: 5},
		},
	)
}

func newTestQuizService() *QuizService {
	store := newQuizFixture()
	return NewQuizService(store.Questions(), store)
}

func TestQuizService_PickNext_Geography(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		PreviousQuestionIDs: []int{},
		Category:            &entities.QuizCategory{ID: 14, Type: "Geography"},
	})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 14, q.CategoryID)
}

func TestQuizService_PickNext_NeverRepeats(t *testing.T) {
	svc := newTestQuizService()
	ctx := context.Background()

	var asked []int
	for range 3 {
		q, err := svc.PickNext(ctx, entities.QuizRound{
			PreviousQuestionIDs: asked,
			Category:            &entities.QuizCategory{ID: 1},
		})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, asked, q.ID)
		assert.Equal(t, 1, q.CategoryID)
		asked = append(asked, q.ID)
	}

	assert.ElementsMatch(t, []int{1, 2, 3}, asked)
}

func TestQuizService_PickNext_Exhausted(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		PreviousQuestionIDs: []int{1, 2, 3},
		Category:            &entities.QuizCategory{ID: 1},
	})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestQuizService_PickNext_EmptyCategory(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		Category: &entities.QuizCategory{ID: 20},
	})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestQuizService_PickNext_AllCategories(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		PreviousQuestionIDs: []int{1, 2, 3, 4},
		Category:            &entities.QuizCategory{ID: 0, Type: "click"},
	})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 5, q.ID)
}

func TestQuizService_PickNext_UnknownCategory(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		Category: &entities.QuizCategory{ID: 1234},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, q)
}

func TestQuizService_PickNext_MissingCategory(t *testing.T) {
	svc := newTestQuizService()

	q, err := svc.PickNext(context.Background(), entities.QuizRound{PreviousQuestionIDs: []int{}})
	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.Nil(t, q)
}

func TestQuizService_PickNext_UsesRandomIndex(t *testing.T) {
	svc := newTestQuizService()

	var gotN int
	svc.intn = func(n int) int {
		gotN = n
		return n - 1
	}

	q, err := svc.PickNext(context.Background(), entities.QuizRound{
		PreviousQuestionIDs: []int{2},
		Category:            &entities.QuizCategory{ID: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 2, gotN)
	assert.Equal(t, 3, q.ID)
}

// leakyQuestions ignores ExcludeIDs, like a misbehaving backend would.
type leakyQuestions struct {
	QuestionRepository
	all []entities.Question
}

func (l leakyQuestions) FindQuestions(_ context.Context, _ entities.QuestionFilter) ([]entities.Question, error) {
	return l.all, nil
}

func TestQuizService_PickNext_FiltersAskedEvenIfStorageDoesNot(t *testing.T) {
	store := newQuizFixture()
	svc := NewQuizService(leakyQuestions{all: []entities.Question{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 1},
	}}, store)

	for range 20 {
		q, err := svc.PickNext(context.Background(), entities.QuizRound{
			PreviousQuestionIDs: []int{1},
			Category:            &entities.QuizCategory{ID: 1},
		})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 2, q.ID)
	}
}

type failingQuestions struct {
	QuestionRepository
}

func (failingQuestions) FindQuestions(context.Context, entities.QuestionFilter) ([]entities.Question, error) {
	return nil, errors.New("connection reset")
}

func TestQuizService_PickNext_StorageError(t *testing.T) {
	store := newQuizFixture()
	svc := NewQuizService(failingQuestions{}, store)

	_, err := svc.PickNext(context.Background(), entities.QuizRound{
		Category: &entities.QuizCategory{ID: 1},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnprocessable)
}
