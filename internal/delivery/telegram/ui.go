package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
)

// buildAnswerKeyboard builds one button per option. Multiple-choice options
// get a row each, true/false options share a single row.
func buildAnswerKeyboard(q entities.Question, options []string, generation uint64, cursor int) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, len(options))
	for i, opt := range options {
		buttons[i] = tgbotapi.NewInlineKeyboardButtonData(opt, buildAnswerCallback(generation, cursor, i))
	}

	if !q.IsMultipleChoice() {
		return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, len(buttons))
	for i, b := range buttons {
		rows[i] = tgbotapi.NewInlineKeyboardRow(b)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNewGameKeyboard builds the single "New game" button shown on welcome and after a game.
func buildNewGameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 New game", buildNewGameCallback()),
		),
	)
}

// buildRetryKeyboard builds the keyboard attached to a failed fetch.
func buildRetryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try again", buildNewGameCallback()),
		),
	)
}

// removeKeyboard is an empty markup; editing a message with it drops its buttons.
func removeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}
