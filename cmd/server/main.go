package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Priya8975/city-events-api/internal/api"
	"github.com/Priya8975/city-events-api/internal/config"
	"github.com/Priya8975/city-events-api/internal/feed"
	"github.com/Priya8975/city-events-api/internal/refresh"
	"github.com/Priya8975/city-events-api/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	eventStore := store.New()
	feedClient := feed.NewClient(cfg.FeedURL, cfg.FeedLimit, cfg.FallbackPath, logger)
	controller := refresh.NewController(feedClient, eventStore, logger)

	// Populate the store before serving. Feed failures degrade to the
	// fallback dataset inside the adapter, so this never blocks startup
	// beyond the fetch timeout.
	controller.Refresh(context.Background())
	logger.Info("initial load complete", "events", eventStore.Len())

	// Scheduled background refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RefreshCron, controller.Trigger); err != nil {
		logger.Error("invalid refresh schedule", "error", err, "cron", cfg.RefreshCron)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(eventStore, controller)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
