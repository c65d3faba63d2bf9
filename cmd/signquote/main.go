package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"signquote/internal/config"
	"signquote/internal/notify"
	"signquote/internal/server"
	"signquote/internal/storage"
	"signquote/pkg/logger"
	"signquote/pkg/redis"
)

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	redisClient := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer redisClient.Close()

	store, err := storage.New(ctx, cfg.Database, redisClient, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
	}
	defer store.Close()

	if err := storage.RunMigrations(ctx, store.DB(), zapLogger); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.ChannelID, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create Telegram notifier", zap.Error(err))
	}

	srv := server.New(store, notifier, zapLogger)
	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server stopped with error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}
