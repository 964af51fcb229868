package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"directory/internal/config"
	"directory/internal/db"
	"directory/internal/directory"
	"directory/internal/loadlog"
	"directory/internal/metrics"
)

type app struct {
	svc     *directory.Service
	metrics *metrics.Metrics
	close   func(context.Context)
}

// newApp wires the directory service. Without MONGODB_URI the load audit
// stays in memory.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	var loads loadlog.Log = loadlog.NewMemory()
	closeFn := func(context.Context) {}

	if cfg.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		logger.Info("connecting to MongoDB", "database", cfg.MongoDatabase)
		database, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to MongoDB")

		repo := loadlog.NewRepo(database)
		if err := repo.EnsureIndexes(connectCtx); err != nil {
			logger.Warn("failed to ensure indexes", "error", err)
		}
		loads = repo
		closeFn = func(ctx context.Context) {
			if err := database.Client().Disconnect(ctx); err != nil {
				logger.Warn("mongo disconnect error", "error", err)
			}
		}
	}

	m := metrics.New(prometheus.NewRegistry())
	client := directory.NewClient(cfg.UsersURL, cfg.AlbumsURL, &http.Client{})
	svc := directory.NewService(client, loads, m, logger)

	return &app{svc: svc, metrics: m, close: closeFn}, nil
}
