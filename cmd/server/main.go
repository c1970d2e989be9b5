package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cogniflow/cogniflow/internal/api"
	"github.com/cogniflow/cogniflow/internal/config"
	"github.com/cogniflow/cogniflow/internal/db"
	"github.com/cogniflow/cogniflow/internal/knowledge"
	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/repository/sqlite"
	"github.com/cogniflow/cogniflow/internal/scheduler"
	"github.com/cogniflow/cogniflow/internal/services"
	"github.com/cogniflow/cogniflow/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("CogniFlow Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("maintenance_worker_count=%d", cfg.MaintenanceWorkers)
	log.Debug("maintenance_queue_size=%d", cfg.MaintenanceQueueSize)
	log.Debug("reindex_at=%s", cfg.ReindexAt)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	userRepo := sqlite.NewUserRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)

	userService := services.NewUserService(userRepo, progressRepo)
	progressService := services.NewProgressService(progressRepo)

	maintenancePool := worker.NewPool(cfg.MaintenanceWorkers, cfg.MaintenanceQueueSize)

	srv := &api.Server{
		DB:              database,
		UserService:     userService,
		ProgressService: progressService,
		ProgressRepo:    progressRepo,
		Assistant:       knowledge.New(),
		MaintenancePool: maintenancePool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	maintenancePool.Start(ctx)

	sched := scheduler.New(maintenancePool, cfg.ReindexAt)
	if err := sched.Start(&worker.ReindexJob{ProgressRepo: progressRepo}); err != nil {
		log.Error("failed to start scheduler: %v", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping scheduler")
	sched.Stop()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	maintenancePool.Stop()

	log.Info("===========================================")
	log.Info("CogniFlow Server Stopped")
	log.Info("===========================================")
}
