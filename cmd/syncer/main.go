package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/alexy/fromcafe-sub000/internal/config"
	"github.com/alexy/fromcafe-sub000/internal/converter"
	"github.com/alexy/fromcafe-sub000/internal/images"
	"github.com/alexy/fromcafe-sub000/internal/publisher"
	"github.com/alexy/fromcafe-sub000/internal/scheduler"
	"github.com/alexy/fromcafe-sub000/internal/service"
	"github.com/alexy/fromcafe-sub000/internal/source/evernote"
	"github.com/alexy/fromcafe-sub000/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher. Without a URL the syncer runs
	// standalone and post events stay local.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Info("rabbitmq url not configured, post events disabled")
	}

	// Initialize stores
	postStore := postgres.NewPostStore(db)
	blogStore := postgres.NewBlogStore(db)
	userStore := postgres.NewUserStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize the note source client factory
	sourceFactory := evernote.NewFactory(evernote.Config{
		BaseURL:           cfg.Evernote.BaseURL,
		Timeout:           cfg.Evernote.Timeout,
		MaxAttempts:       cfg.Evernote.Retry.MaxAttempts,
		InitialBackoff:    cfg.Evernote.Retry.InitialBackoff,
		MaxBackoff:        cfg.Evernote.Retry.MaxBackoff,
		RequestsPerSecond: cfg.Evernote.RequestsPerSecond,
		Burst:             cfg.Evernote.Burst,
	}, logger)

	imageStore, err := images.NewDiskStore(cfg.Media.Root, cfg.Media.BaseURL, logger)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		os.Exit(1)
	}

	noteConverter := converter.New(imageStore, cfg.Sync.ExcerptLength, logger)

	syncService := service.NewSyncService(
		func(token string) service.NoteSource { return sourceFactory.ClientFor(token) },
		noteConverter,
		postStore,
		blogStore,
		userStore,
		imageStore,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, userStore, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting blog syncer",
		"interval", cfg.Sync.Interval,
		"publish_tag", cfg.Sync.PublishTag,
		"max_notes", cfg.Sync.MaxNotesPerFetch,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
