// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
)

// Error messages.
const (
	msgSourceUnavailable = "Could not load questions right now. Please try again in a moment."
	msgNoQuestions       = "The question service returned no questions. Please try again."
	msgNotActive         = "This question is no longer active"
	msgInternalError     = "Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Send /help to see what I can do."
)

const (
	msgLoading    = "Loading questions…"
	msgCorrect    = "Correct!"
	msgIncorrect  = "Incorrect. The correct answer was: %s"
	msgEndOfGame  = "End of Game! You did %d/%d"
	msgNoGame     = "No game in progress. Send /play to start one."
	msgGameLoad   = "A new game is loading, hold on."
	msgStopped    = "Game stopped. Send /play whenever you want another round."
	msgNothingRun = "There is no game to stop."
	msgWelcome    = "Welcome to Trivia!\n\nEach game is a fresh batch of questions from the Open Trivia Database. " +
		"Tap an answer button, or just type the answer. Press the button below to begin."
	msgHelp = "/play — start a new game\n" +
		"/progress — show the current question and your score\n" +
		"/stop — abandon the current game\n" +
		"/help — show this message\n\n" +
		"Answers are case-insensitive when typed."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// formatQuestion renders a question header and its decoded prompt (MarkdownV2 safe).
func formatQuestion(q entities.Question, number, total int) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("Question %d/%d", number, total)))
	sb.WriteString("\n")

	meta := make([]string, 0, 2)
	if q.Category != "" {
		meta = append(meta, q.DecodedCategory())
	}
	if q.Difficulty != "" {
		meta = append(meta, capitalize(q.Difficulty))
	}
	if len(meta) > 0 {
		sb.WriteString(italic(strings.Join(meta, " · ")))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(md(q.DecodedPrompt()))

	return sb.String()
}

// formatOutcome renders the verdict for one answer.
func formatOutcome(correct bool, correctAnswer string) string {
	if correct {
		return msgCorrect
	}
	return fmt.Sprintf(msgIncorrect, correctAnswer)
}

func formatFinalScore(correct, total int) string {
	return fmt.Sprintf(msgEndOfGame, correct, total)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
