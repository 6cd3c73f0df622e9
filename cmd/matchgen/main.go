// Command matchgen executes one batch match-generation run and exits.
// Intended for cron-style invocation or manual backfills.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kindredhq/kindred-backend/internal/config"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/infrastructure/container"
	"github.com/kindredhq/kindred-backend/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	app, err := container.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error closing application", zap.Error(err))
		}
	}()

	// Ctrl+C halts iteration over remaining users; the run is recorded
	// as partial.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run, err := app.Generator.Run(ctx)
	if err != nil {
		log.Error("generation run failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("generation run finished",
		zap.String("run_id", run.ID.String()),
		zap.String("status", run.Status),
		zap.Int("users_evaluated", run.UsersEvaluated),
		zap.Int("matches_created", run.MatchesCreated))

	if run.Status == domain.RunStatusFailed {
		os.Exit(1)
	}
}
