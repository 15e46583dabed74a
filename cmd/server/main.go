package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/lexiflash/internal/api"
	"github.com/vytor/lexiflash/internal/config"
	"github.com/vytor/lexiflash/internal/db"
	"github.com/vytor/lexiflash/internal/jobs"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/repository/sqlite"
	"github.com/vytor/lexiflash/internal/services"
	"github.com/vytor/lexiflash/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("LexiFlash Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("practice_default_size=%d", cfg.PracticeDefaultSize)
	log.Debug("practice_max_size=%d", cfg.PracticeMaxSize)
	log.Debug("difficult_max_rate=%d", cfg.DifficultMaxRate)
	log.Debug("default_collation=%s", cfg.DefaultCollation)
	log.Debug("cors_allowed_origins=%v", cfg.CORSAllowedOrigins)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	dictRepo := sqlite.NewDictionaryRepository(database.DB)
	wordRepo := sqlite.NewWordRepository(database.DB)
	activityRepo := sqlite.NewActivityRepository(database.DB)

	practiceCfg := services.PracticeConfig{
		DefaultSize:      cfg.PracticeDefaultSize,
		MaxSize:          cfg.PracticeMaxSize,
		DifficultMaxRate: cfg.DifficultMaxRate,
		Collation:        cfg.Collation(),
	}

	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	importService := services.NewImportService(dictRepo, wordRepo)

	srv := &api.Server{
		Dictionaries:   services.NewDictionaryService(dictRepo, wordRepo),
		Words:          services.NewWordService(wordRepo, dictRepo, activityRepo, practiceCfg),
		Stats:          services.NewStatsService(wordRepo, activityRepo, cfg.DifficultMaxRate),
		Jobs:           jobs.NewWorkerQueue(importPool, importService),
		DB:             database,
		UploadDir:      cfg.UploadDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

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

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Queued imports are dropped; their upload files stay in UploadDir.
	log.Debug("stopping import pool")
	cancel()
	importPool.Stop()

	log.Info("===========================================")
	log.Info("LexiFlash Server Stopped")
	log.Info("===========================================")
}
