package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/trivia-bot/internal/config"
	"github.com/aliskhannn/trivia-bot/internal/delivery/telegram"
	"github.com/aliskhannn/trivia-bot/internal/infra/postgres"
	"github.com/aliskhannn/trivia-bot/internal/logger"
	"github.com/aliskhannn/trivia-bot/internal/opentdb"
	"github.com/aliskhannn/trivia-bot/internal/repository"
	"github.com/aliskhannn/trivia-bot/internal/service"
	"github.com/aliskhannn/trivia-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "play",
			Description: "Start a new game",
		},
		{
			Command:     "progress",
			Description: "Show the current question and score",
		},
		{
			Command:     "stop",
			Description: "Abandon the current game",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the player registry.
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database is not configured", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	if err = userRepo.EnsureSchema(ctx); err != nil {
		lg.Fatal("failed to prepare schema", zap.Error(err))
	}
	userService := service.NewUserService(userRepo)

	// Initialize the question source and per-chat games.
	client := opentdb.NewClient(cfg.OpenTDB.BaseURL, cfg.OpenTDB.Timeout)
	query := opentdb.Query{
		Amount:     cfg.OpenTDB.Amount,
		Category:   cfg.OpenTDB.Category,
		Difficulty: cfg.OpenTDB.Difficulty,
		Type:       cfg.OpenTDB.Type,
	}
	games := storage.NewGameStorage(func() *service.GameSession {
		return service.NewGameSession(client, query, lg)
	})

	handler := telegram.NewHandler(
		bot,
		lg,
		games,
		userService,
		cfg.Telegram.PollTimeout,
		cfg.OpenTDB.Timeout,
	)

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		// Run returns nil when the update channel closes; stop the monitor too.
		defer cancel()
		return handler.Run(gctx)
	})
	g.Go(func() error {
		return postgres.Monitor(gctx, pool, cfg.DB.HealthCheck, func(err error) {
			lg.Warn("database ping failed", zap.Error(err))
		})
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}
