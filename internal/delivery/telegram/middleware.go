package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and tells the player once.
// Game-state errors get a specific notice, everything else the generic one.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		fields := []zap.Field{zap.Int64("chat_id", chatID), zap.Error(err)}

		switch {
		case errors.Is(err, service.ErrNotAwaitingAnswer), errors.Is(err, service.ErrInvalidOption):
			h.logger.Warn("answer refused", fields...)
			h.sendError(chatID, msgNotActive)
		case errors.Is(err, service.ErrSourceUnavailable):
			h.logger.Warn("question source unavailable", fields...)
			h.sendError(chatID, msgSourceUnavailable)
		case errors.Is(err, service.ErrNoQuestions):
			h.logger.Info("no questions returned", fields...)
			h.sendError(chatID, msgNoQuestions)
		default:
			h.logger.Error("handle error", fields...)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
