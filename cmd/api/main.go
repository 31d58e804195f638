package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/trivia-api/internal/cache"
	"github.com/aliskhannn/trivia-api/internal/config"
	"github.com/aliskhannn/trivia-api/internal/delivery/rest"
	"github.com/aliskhannn/trivia-api/internal/delivery/telegram"
	"github.com/aliskhannn/trivia-api/internal/infra/postgres"
	"github.com/aliskhannn/trivia-api/internal/infra/postgres/repository"
	"github.com/aliskhannn/trivia-api/internal/logger"
	"github.com/aliskhannn/trivia-api/internal/metrics"
	"github.com/aliskhannn/trivia-api/internal/service"
	"github.com/aliskhannn/trivia-api/internal/storage"
)

func main() {
	configDir := pflag.String("config-dir", "config", "directory containing config.yaml")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("application stopped with error", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	var (
		categoryRepo service.CategoryRepository
		questionRepo service.QuestionRepository
		db           rest.Pinger
	)

	// Initialize storage.
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			lg.Info("database migrations applied")
		}

		categoryRepo = repository.NewCategoryRepository(pool)
		questionRepo = repository.NewQuestionRepository(pool, postgres.NewTransactor(pool))
		db = pool
	} else {
		lg.Warn("DATABASE_URL is not set, using in-memory storage")
		store := storage.NewSeededMemoryStore()
		categoryRepo = store
		questionRepo = store.Questions()
	}

	var categoryCache service.CategoryCache
	if cfg.Redis.URL != "" {
		client, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			lg.Warn("redis unavailable, category cache disabled", zap.Error(err))
		} else {
			defer func() { _ = client.Close() }()
			categoryCache = cache.NewCategoryCache(client, cfg.Redis.TTL)
		}
	}

	// Initialize services.
	categoryService := service.NewCategoryService(categoryRepo, categoryCache, lg)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cfg.QuestionsPerPage)
	quizService := service.NewQuizService(questionRepo, categoryRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	handler := rest.NewHandler(lg, categoryService, questionService, quizService, db, m)
	server := rest.NewServer(cfg.HTTP, rest.NewRouter(handler, m, lg), lg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})

	if cfg.TelegramAPIToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			return fmt.Errorf("create telegram bot: %w", err)
		}

		if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
			lg.Warn("failed to set bot commands", zap.Error(err))
		}
		lg.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

		bh := telegram.NewHandler(bot, lg.Named("telegram"), categoryService, quizService,
			service.NewAnswerValidator(), storage.NewRoundStorage())
		g.Go(func() error {
			defer bot.StopReceivingUpdates()
			if err := bh.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
