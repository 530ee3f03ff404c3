package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/service"
)

func (h *Handler) handleCommand(ctx context.Context, chatID int64, command string) {
	switch command {
	case "start":
		msg := newPlainMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildNewGameKeyboard()
		_ = h.send(msg)

	case "play":
		_ = h.withErrorHandling(h.startGame)(ctx, chatID)

	case "progress":
		_ = h.withErrorHandling(h.handleProgress)(ctx, chatID)

	case "stop":
		_ = h.withErrorHandling(h.handleStop)(ctx, chatID)

	case "help":
		_ = h.send(newPlainMessage(chatID, msgHelp))

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handleStop abandons the running game, cancels its pending fetch and forgets
// the chat's session; the next /play starts from a fresh one.
func (h *Handler) handleStop(_ context.Context, chatID int64) error {
	g, ok := h.games.Get(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNothingRun))
	}

	switch g.Phase() {
	case service.PhaseAwaitingQuestions, service.PhaseAwaitingAnswer:
	default:
		return h.send(newPlainMessage(chatID, msgNothingRun))
	}

	if f, ok := h.fetches[chatID]; ok {
		f.cancel()
		delete(h.fetches, chatID)
	}
	g.Abandon()
	h.games.Delete(chatID)

	h.logger.Debug("game stopped by player", zap.Int64("chat_id", chatID))

	return h.send(newPlainMessage(chatID, msgStopped))
}

// handleTypedAnswer scores free text against the current question.
func (h *Handler) handleTypedAnswer(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		g, ok := h.games.Get(chatID)
		if !ok {
			return h.send(newPlainMessage(chatID, msgNoGame))
		}

		switch g.Phase() {
		case service.PhaseAwaitingQuestions:
			return h.send(newPlainMessage(chatID, msgGameLoad))
		case service.PhaseAwaitingAnswer:
		default:
			return h.send(newPlainMessage(chatID, msgNoGame))
		}

		out, err := g.SubmitAnswer(text)
		if err != nil {
			return err
		}

		return h.reportOutcome(ctx, chatID, g, out)
	}
}
