package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/service"
)

// startGame requests a new batch for the chat and fetches it off the loop.
// A fetch still running for the chat is cancelled; its result will be stale.
func (h *Handler) startGame(ctx context.Context, chatID int64) error {
	g := h.games.GetOrCreate(chatID)

	if f, ok := h.fetches[chatID]; ok {
		f.cancel()
	}

	gen := g.RequestBatch()

	var (
		fetchCtx context.Context
		cancel   context.CancelFunc
	)
	if h.fetchTimeout > 0 {
		fetchCtx, cancel = context.WithTimeout(ctx, h.fetchTimeout)
	} else {
		fetchCtx, cancel = context.WithCancel(ctx)
	}
	h.fetches[chatID] = inflight{game: g, generation: gen, cancel: cancel}

	h.logger.Debug("fetching questions",
		zap.Int64("chat_id", chatID),
		zap.Uint64("generation", gen),
		zap.Int("active_chats", h.games.Len()),
	)

	go func() {
		b := g.FetchBatch(fetchCtx)
		select {
		case h.batches <- batchResult{chatID: chatID, game: g, generation: gen, batch: b}:
		case <-ctx.Done():
		}
	}()

	return h.send(newPlainMessage(chatID, msgLoading))
}

// applyBatch installs a fetched batch on the loop goroutine.
func (h *Handler) applyBatch(ctx context.Context, res batchResult) {
	if f, ok := h.fetches[res.chatID]; ok && f.game == res.game && f.generation == res.generation {
		f.cancel()
		delete(h.fetches, res.chatID)
	}

	// The chat may have stopped and started over with a fresh session whose
	// generations restart from the beginning.
	g, ok := h.games.Get(res.chatID)
	if !ok || g != res.game {
		h.logger.Debug("batch for a discarded session dropped", zap.Int64("chat_id", res.chatID))
		return
	}

	_, err := g.ApplyBatch(res.generation, res.batch)
	switch {
	case err == nil:
		_ = h.withErrorHandling(h.presentQuestion)(ctx, res.chatID)

	case errors.Is(err, service.ErrStaleBatch):
		h.logger.Debug("stale batch dropped",
			zap.Int64("chat_id", res.chatID),
			zap.Uint64("generation", res.generation),
		)

	case errors.Is(err, service.ErrNoQuestions):
		h.logger.Info("no questions returned",
			zap.Int64("chat_id", res.chatID),
			zap.Int("response_code", res.batch.ResponseCode),
		)
		h.reportFetchFailure(ctx, res.chatID, g, msgNoQuestions)

	case errors.Is(err, service.ErrSourceUnavailable):
		h.logger.Warn("question source unavailable",
			zap.Int64("chat_id", res.chatID),
			zap.Error(err),
		)
		h.reportFetchFailure(ctx, res.chatID, g, msgSourceUnavailable)

	default:
		h.logger.Error("apply batch",
			zap.Int64("chat_id", res.chatID),
			zap.Error(err),
		)
		h.sendError(res.chatID, msgInternalError)
	}
}

// reportFetchFailure offers a retry. When a game was running it stays in effect,
// and its question is sent again because the buttons on screen carry the
// generation that the failed request replaced.
func (h *Handler) reportFetchFailure(ctx context.Context, chatID int64, g *service.GameSession, text string) {
	msg := newPlainMessage(chatID, text)
	msg.ReplyMarkup = buildRetryKeyboard()
	if err := h.send(msg); err != nil {
		return
	}

	if g.Phase() == service.PhaseAwaitingAnswer {
		_ = h.withErrorHandling(h.presentQuestion)(ctx, chatID)
	}
}

// presentQuestion sends the current question with its answer buttons.
func (h *Handler) presentQuestion(_ context.Context, chatID int64) error {
	g, ok := h.games.Get(chatID)
	if !ok {
		return nil
	}

	q, ok := g.CurrentQuestion()
	if !ok {
		return nil
	}

	idx, total := g.CurrentProgress()
	msg := newMessage(chatID, formatQuestion(q, idx+1, total))
	msg.ReplyMarkup = buildAnswerKeyboard(q, g.CurrentOptions(), g.Generation(), idx)

	return h.send(msg)
}

// reportOutcome sends the verdict followed by the next question or the final score.
func (h *Handler) reportOutcome(ctx context.Context, chatID int64, g *service.GameSession, out service.Outcome) error {
	if err := h.send(newPlainMessage(chatID, formatOutcome(out.Correct, out.CorrectAnswer))); err != nil {
		return err
	}

	if !out.Finished {
		return h.presentQuestion(ctx, chatID)
	}

	correct, total, err := g.FinalScore()
	if err != nil {
		return err
	}

	msg := newPlainMessage(chatID, formatFinalScore(correct, total))
	msg.ReplyMarkup = buildNewGameKeyboard()
	return h.send(msg)
}
