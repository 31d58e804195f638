package entities

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a single trivia question with its answer.
type Question struct {
	ID         int    `json:"id"`         // unique question ID, assigned on creation
	Question   string `json:"question"`   // question text
	Answer     string `json:"answer"`     // expected answer
	CategoryID int    `json:"category"`   // ID of the owning category
	Difficulty int    `json:"difficulty"` // difficulty from 1 to 5
}

// NewQuestion holds the fields required to create a question.
type NewQuestion struct {
	Question   string
	Answer     string
	CategoryID int
	Difficulty int
}

// QuestionFilter narrows a question lookup.
// Zero CategoryID means all categories.
type QuestionFilter struct {
	CategoryID int
	ExcludeIDs []int
}

// Matches reports whether q passes the filter.
func (f QuestionFilter) Matches(q Question) bool {
	if f.CategoryID != 0 && q.CategoryID != f.CategoryID {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if id == q.ID {
			return false
		}
	}
	return true
}
