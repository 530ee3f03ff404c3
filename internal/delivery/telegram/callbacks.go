package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionAnswer:
		h.handleAnswerCallback(ctx, cb, cd)

	case actionGame:
		h.answerCallback(cb.ID, "")
		if len(cd.Params) == 1 && cd.Params[0] == gameNew {
			_ = h.withErrorHandling(h.startGame)(ctx, chatID)
		}

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) {
	chatID := cb.Message.Chat.ID

	ac, err := parseAnswerCallback(cd)
	if err != nil {
		h.logger.Warn("invalid answer callback",
			zap.String("data", cd.Raw),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgNotActive)
		return
	}

	g, ok := h.games.Get(chatID)
	if !ok || g.Generation() != ac.Generation {
		h.answerCallback(cb.ID, msgNotActive)
		return
	}

	out, err := g.SubmitOptionAt(ac.Cursor, ac.OptionIndex)
	if err != nil {
		h.logger.Warn("answer refused",
			zap.Int64("chat_id", chatID),
			zap.String("game_id", g.GameID()),
			zap.Int("cursor", ac.Cursor),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgNotActive)
		return
	}

	// Remove the user's "clock" and the buttons of the answered question.
	h.answerCallback(cb.ID, "")
	_ = h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, removeKeyboard()))

	_ = h.withErrorHandling(func(ctx context.Context, chatID int64) error {
		return h.reportOutcome(ctx, chatID, g, out)
	})(ctx, chatID)
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
