package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/aliskhannn/trivia-bot/internal/service"
)

const progressBarLength = 10

func (h *Handler) handleProgress(_ context.Context, chatID int64) error {
	g, ok := h.games.Get(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoGame))
	}

	switch g.Phase() {
	case service.PhaseAwaitingAnswer:
		idx, total := g.CurrentProgress()
		return h.send(newPlainMessage(chatID, formatProgress(idx, total, g.Correct())))

	case service.PhaseFinished:
		correct, total, err := g.FinalScore()
		if err != nil {
			return err
		}
		return h.send(newPlainMessage(chatID, fmt.Sprintf("Last game: %d/%d", correct, total)))

	case service.PhaseAwaitingQuestions:
		return h.send(newPlainMessage(chatID, msgGameLoad))

	default:
		return h.send(newPlainMessage(chatID, msgNoGame))
	}
}

// formatProgress renders the in-game status; answered is the zero-based cursor.
func formatProgress(answered, total, correct int) string {
	return fmt.Sprintf(
		"Question %d/%d\n%s\nScore: %d/%d",
		answered+1,
		total,
		buildProgressBar(answered, total, progressBarLength),
		correct,
		answered,
	)
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
