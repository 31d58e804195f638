package entities

// QuizCategory is the category selector sent by a client when playing.
// ID 0 selects questions from every category.
type QuizCategory struct {
	ID   int
	Type string
}

// IsAll reports whether the selector covers all categories.
func (c QuizCategory) IsAll() bool {
	return c.ID == 0
}

// QuizRound describes one "next question" request of a quiz round.
// It is never persisted: clients carry PreviousQuestionIDs between requests.
type QuizRound struct {
	PreviousQuestionIDs []int
	Category            *QuizCategory // nil when the request omitted the category
}

// Filter returns the question filter selecting the round's candidates.
func (r QuizRound) Filter() QuestionFilter {
	f := QuestionFilter{ExcludeIDs: r.PreviousQuestionIDs}
	if r.Category != nil {
		f.CategoryID = r.Category.ID
	}
	return f
}
