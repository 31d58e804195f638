package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

const categoriesPerRow = 2

// buildCategoriesKeyboard builds one button per category plus an "all" button.
func buildCategoriesKeyboard(categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Type, buildPlayCallback(c.ID)))
		if len(row) == categoriesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎲 "+allCategoriesTitle, buildPlayCallback(0)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds keyboard shown under a question.
func buildQuestionKeyboard(questionID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", buildSkipCallback(questionID)),
		),
	)
}
