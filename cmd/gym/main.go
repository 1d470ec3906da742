package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gymkeeper/internal/accounts"
	"github.com/dmitrijs2005/gymkeeper/internal/cli"
	"github.com/dmitrijs2005/gymkeeper/internal/config"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// after the first interrupt restore default handling, so a second one
	// kills the process even inside a form prompt
	go func() {
		<-ctx.Done()
		stop()
	}()

	repo, closeStore, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		logger.Error(ctx, "error opening storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(context.Background(), "error closing storage", "error", err)
		}
	}()

	store := storage.NewAdapter(repo, logger)
	svc := accounts.NewService(ctx, store, accounts.WithLogger(logger))

	app := cli.NewApp(cfg, svc, logger, os.Stdin)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "front end stopped", "error", err)
	}
}
