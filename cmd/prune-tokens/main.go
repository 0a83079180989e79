// Command prune-tokens deletes delivery tokens that have not been refreshed
// within notifications.token_max_idle_days. It is intended to be invoked by
// an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres/devicetoken"
	"github.com/heartmarshall/ideamatcher-backend/internal/app"
	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Pruning only touches the token registry.
	svc := notification.NewService(logger, devicetoken.New(pool), nil, nil, nil, nil, cfg.Notifications)

	maxIdle := time.Duration(cfg.Notifications.TokenMaxIdleDays) * 24 * time.Hour

	deleted, err := svc.PruneStale(ctx, maxIdle)
	if err != nil {
		logger.Error("prune tokens failed",
			slog.String("error", err.Error()),
			slog.Duration("max_idle", maxIdle),
		)
		os.Exit(1)
	}

	logger.Info("prune tokens completed",
		slog.Int64("deleted", deleted),
		slog.Duration("max_idle", maxIdle),
	)
}
