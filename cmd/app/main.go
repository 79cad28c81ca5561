package main

import (
	"context"
	"net/http"
	"time"

	"coingarden/config"
	"coingarden/handlers"
	"coingarden/metrics"
	"coingarden/migrations"
	"coingarden/repository"
	"coingarden/service"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.LoadConfigOrPanic()

	db := config.InitDB(ctx, cfg)
	defer func() { _ = db.Close() }()

	if err := migrations.Up(ctx, db); err != nil {
		logger.Fatal("миграции не применились", zap.Error(err))
	}

	repoImpl := repository.NewPostgresRepository(db)

	svc := service.NewService(repoImpl, cfg.JWTSecret)

	h := handlers.NewHandler(svc, cfg.JWTSecret, cfg.AdminKey, cfg.ClientVersion, logger)

	r := h.Router()
	r.Use(metrics.Middleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	srv := http.Server{
		Handler:      r,
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Info("сервер запущен", zap.String("port", cfg.ServerPort))
	if err := srv.ListenAndServe(); err != nil {
		_ = db.Close()
		logger.Fatal("сервер остановлен", zap.Error(err))
	}
}
