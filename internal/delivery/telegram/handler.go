package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/service"
	"github.com/aliskhannn/trivia-bot/internal/storage"
)

// batchResult carries a fetched batch from a fetch goroutine back to the update loop.
type batchResult struct {
	chatID     int64
	game       *service.GameSession // session the fetch was started for
	generation uint64
	batch      service.Batch
}

// inflight is the fetch currently running for a chat.
type inflight struct {
	game       *service.GameSession
	generation uint64
	cancel     context.CancelFunc
}

// Handler owns every GameSession in games: all mutations happen on the
// goroutine running Run.
type Handler struct {
	bot          Bot
	logger       *zap.Logger
	games        *storage.GameStorage
	userService  UserService
	pollTimeout  int
	fetchTimeout time.Duration

	batches chan batchResult
	fetches map[int64]inflight // touched only by the loop goroutine
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	games *storage.GameStorage,
	userService UserService,
	pollTimeout int,
	fetchTimeout time.Duration,
) *Handler {
	return &Handler{
		bot:          bot,
		logger:       logger,
		games:        games,
		userService:  userService,
		pollTimeout:  pollTimeout,
		fetchTimeout: fetchTimeout,
		batches:      make(chan batchResult, 16),
		fetches:      make(map[int64]inflight),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.pollTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.cancelFetches()

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		case res := <-h.batches:
			h.applyBatch(ctx, res)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		h.logger.Debug("callback received",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
		)
		if cb.Message != nil {
			h.ensureUser(ctx, cb.From.ID, cb.Message.Chat.ID)
		}
		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	if update.Message.From != nil {
		h.ensureUser(ctx, update.Message.From.ID, chatID)
	}

	if update.Message.IsCommand() {
		h.handleCommand(ctx, chatID, update.Message.Command())
		return
	}

	_ = h.withErrorHandling(h.handleTypedAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) ensureUser(ctx context.Context, userID, chatID int64) {
	if err := h.userService.EnsureUser(ctx, userID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (h *Handler) cancelFetches() {
	for chatID, f := range h.fetches {
		f.cancel()
		delete(h.fetches, chatID)
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
