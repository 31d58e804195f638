package storage

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/repository"
)

// MemoryStore keeps categories and questions in memory.
// It satisfies the same contracts as the PostgreSQL repositories.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []entities.Category
	questions  []entities.Question // ordered by ID
	nextID     int
}

// NewMemoryStore creates a store holding copies of the given data.
func NewMemoryStore(categories []entities.Category, questions []entities.Question) *MemoryStore {
	s := &MemoryStore{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
	}
	slices.SortFunc(s.categories, func(a, b entities.Category) int { return a.ID - b.ID })
	slices.SortFunc(s.questions, func(a, b entities.Question) int { return a.ID - b.ID })
	for _, q := range s.questions {
		s.nextID = max(s.nextID, q.ID)
	}
	return s
}

// NewSeededMemoryStore creates a store with the default categories and questions.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(DefaultCategories(), DefaultQuestions())
}

// List returns all categories ordered by ID.
func (s *MemoryStore) List(_ context.Context) ([]entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), nil
}

// GetByID retrieves a category by ID.
func (s *MemoryStore) GetByID(_ context.Context, id int) (*entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.category(id)
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return &c, nil
}

// Exists checks if a category with the given ID exists.
func (s *MemoryStore) Exists(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.category(id)
	return ok, nil
}

// Questions returns a view of the store serving the question contract.
func (s *MemoryStore) Questions() *MemoryQuestions {
	return &MemoryQuestions{s: s}
}

func (s *MemoryStore) category(id int) (entities.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Category{}, false
}

// MemoryQuestions is the question side of MemoryStore.
// Categories and questions share method names (List, GetByID), hence the split.
type MemoryQuestions struct {
	s *MemoryStore
}

// List returns one page of questions ordered by ID.
func (m *MemoryQuestions) List(_ context.Context, limit, offset int) ([]entities.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	if offset >= len(m.s.questions) || limit <= 0 {
		return nil, nil
	}
	end := min(offset+limit, len(m.s.questions))
	return slices.Clone(m.s.questions[offset:end]), nil
}

// Count returns the total number of questions.
func (m *MemoryQuestions) Count(_ context.Context) (int, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return len(m.s.questions), nil
}

// Search returns questions whose text contains term, case-insensitively.
func (m *MemoryQuestions) Search(_ context.Context, term string) ([]entities.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	needle := strings.ToLower(term)
	var out []entities.Question
	for _, q := range m.s.questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out, nil
}

// FindQuestions returns the questions matching filter ordered by ID.
func (m *MemoryQuestions) FindQuestions(_ context.Context, filter entities.QuestionFilter) ([]entities.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var out []entities.Question
	for _, q := range m.s.questions {
		if filter.Matches(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetByID retrieves a question by ID.
func (m *MemoryQuestions) GetByID(_ context.Context, id int) (*entities.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	i, ok := m.index(id)
	if !ok {
		return nil, repository.ErrQuestionNotFound
	}
	q := m.s.questions[i]
	return &q, nil
}

// Create stores a new question and returns its ID.
func (m *MemoryQuestions) Create(_ context.Context, nq entities.NewQuestion) (int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.category(nq.CategoryID); !ok {
		return 0, repository.ErrCategoryNotFound
	}

	m.s.nextID++
	m.s.questions = append(m.s.questions, entities.Question{
		ID:         m.s.nextID,
		Question:   nq.Question,
		Answer:     nq.Answer,
		CategoryID: nq.CategoryID,
		Difficulty: nq.Difficulty,
	})
	return m.s.nextID, nil
}

// Delete removes a question by ID.
func (m *MemoryQuestions) Delete(_ context.Context, id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	i, ok := m.index(id)
	if !ok {
		return repository.ErrQuestionNotFound
	}
	m.s.questions = slices.Delete(m.s.questions, i, i+1)
	return nil
}

func (m *MemoryQuestions) index(id int) (int, bool) {
	return slices.BinarySearchFunc(m.s.questions, id, func(q entities.Question, id int) int {
		return q.ID - id
	})
}
