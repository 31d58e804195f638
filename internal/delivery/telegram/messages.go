// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

const (
	msgWelcome = "<b>Welcome to Trivia!</b>\n\n" +
		"Pick a category with /categories or start right away with /play.\n" +
		"Type your answer as a plain message. /help lists all commands."
	msgHelp = "/categories — list quiz categories\n" +
		"/play — choose a category and play\n" +
		"/play N — play category N (0 for all categories)\n" +
		"/stop — stop the current round"
)

// Replies.
const (
	msgUnknownCommand   = "Unknown command. Use /help to see available commands."
	msgInvalidCategory  = "Invalid category. Example: /play 3"
	msgUnknownCategory  = "There is no such category. See /categories."
	msgNoCategories     = "No categories available yet."
	msgNoActiveRound    = "No round in progress. Start one with /play."
	msgNoQuestions      = "There are no questions in this category yet."
	msgInternalError    = "Something went wrong. Please try again later."
	msgCorrect          = "✅ Correct!"
	msgWrongTemplate    = "❌ Wrong. The answer was <b>%s</b>."
	msgSkippedTemplate  = "⏭ Skipped. The answer was <b>%s</b>."
	allCategoriesTitle  = "All categories"
	roundStartedPattern = "🎯 Round started: <b>%s</b>"
)

func formatCategories(categories []entities.Category) string {
	var sb strings.Builder
	sb.WriteString("<b>Categories</b>\n\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "%d. %s\n", c.ID, esc(c.Type))
	}
	sb.WriteString("\nPlay one with /play N, or /play 0 for all of them.")
	return sb.String()
}

func formatQuestion(q *entities.Question, number int) string {
	return fmt.Sprintf(
		"<b>Question %d</b> · difficulty %d/%d\n\n%s",
		number,
		q.Difficulty,
		entities.MaxDifficulty,
		esc(q.Question),
	)
}

func formatResult(correct, answered int) string {
	if answered == 0 {
		return "🏁 Round over. No questions were answered."
	}
	return fmt.Sprintf("🏁 Round over! You answered <b>%d of %d</b> correctly.", correct, answered)
}

func formatRoundStarted(category entities.QuizCategory) string {
	title := category.Type
	if category.IsAll() {
		title = allCategoriesTitle
	}
	return fmt.Sprintf(roundStartedPattern, esc(title))
}
