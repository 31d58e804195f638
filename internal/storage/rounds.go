package storage

import (
	"slices"
	"sync"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

// ChatRound is the state of a quiz round played in one chat.
type ChatRound struct {
	Category entities.QuizCategory
	Asked    []int              // IDs of questions already asked
	Current  *entities.Question // question awaiting an answer
	Correct  int                // number of correct answers so far
}

// RoundStorage provides in-memory storage for quiz rounds by chat ID.
type RoundStorage struct {
	mu     sync.RWMutex
	rounds map[int64]ChatRound
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		rounds: make(map[int64]ChatRound),
	}
}

// Store saves the round for a given chat ID.
func (s *RoundStorage) Store(chatID int64, round ChatRound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round.Asked = slices.Clone(round.Asked)
	s.rounds[chatID] = round
}

// Get retrieves the round for a given chat ID.
func (s *RoundStorage) Get(chatID int64) (ChatRound, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[chatID]
	if ok {
		round.Asked = slices.Clone(round.Asked)
	}
	return round, ok
}

// Delete removes the round for a given chat ID.
func (s *RoundStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, chatID)
}

// Answered returns how many questions of the round were answered or skipped.
func (r ChatRound) Answered() int {
	if r.Current != nil {
		return len(r.Asked) - 1
	}
	return len(r.Asked)
}
