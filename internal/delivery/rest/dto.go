package rest

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

// flexInt accepts both 3 and "3": browser frontends send ids as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(bytes.Trim(data, `"`))
	if s == "" {
		*f = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*f = flexInt(n)
	return nil
}

// questionsRequest is the body of POST /questions: a search when
// searchTerm is present, a new question otherwise.
type questionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty flexInt `json:"difficulty"`
	Category   flexInt `json:"category"`
}

type createQuestionRequest struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Difficulty int    `validate:"min=1,max=5"`
	Category   int    `validate:"gt=0"`
}

func (r questionsRequest) create() createQuestionRequest {
	return createQuestionRequest{
		Question:   r.Question,
		Answer:     r.Answer,
		Difficulty: int(r.Difficulty),
		Category:   int(r.Category),
	}
}

func (r createQuestionRequest) toEntity() entities.NewQuestion {
	return entities.NewQuestion{
		Question:   r.Question,
		Answer:     r.Answer,
		CategoryID: r.Category,
		Difficulty: r.Difficulty,
	}
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type quizCategoryRequest struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

type playRequest struct {
	PreviousQuestions []flexInt            `json:"previous_questions"`
	QuizCategory      *quizCategoryRequest `json:"quiz_category"`
}

func (r playRequest) toRound() entities.QuizRound {
	round := entities.QuizRound{
		PreviousQuestionIDs: make([]int, 0, len(r.PreviousQuestions)),
	}
	for _, id := range r.PreviousQuestions {
		round.PreviousQuestionIDs = append(round.PreviousQuestionIDs, int(id))
	}
	if r.QuizCategory != nil {
		round.Category = &entities.QuizCategory{
			ID:   int(r.QuizCategory.ID),
			Type: r.QuizCategory.Type,
		}
	}
	return round
}

// nonNil keeps empty result sets encoded as [] rather than null.
func nonNil(questions []entities.Question) []entities.Question {
	if questions == nil {
		return []entities.Question{}
	}
	return questions
}
