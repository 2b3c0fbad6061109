package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/movetable/internal/api"
	"github.com/vytor/movetable/internal/config"
	"github.com/vytor/movetable/internal/inflight"
	"github.com/vytor/movetable/internal/lichess"
	"github.com/vytor/movetable/internal/logger"
	"github.com/vytor/movetable/internal/pgn"
	"github.com/vytor/movetable/internal/services"
	"github.com/vytor/movetable/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Movetable Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("lichess_base_url=%s", cfg.LichessBaseURL)
	log.Debug("fetch_timeout=%v", cfg.FetchTimeout)
	log.Debug("request_timeout=%v", cfg.RequestTimeout)
	log.Debug("max_pgn_bytes=%d", cfg.MaxPGNBytes)
	log.Debug("fetch_workers=%d", cfg.FetchWorkers)
	log.Debug("fetch_queue_size=%d", cfg.FetchQueueSize)
	log.Debug("cors_allowed_origins=%v", cfg.CORSAllowedOrigins)

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}

	// Initialize fetch pool
	fetchPool := worker.NewPool(cfg.FetchWorkers, cfg.FetchQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	fetchPool.Start(ctx)

	// Initialize services
	client := worker.NewPooledClient(lichess.New(
		lichess.WithBaseURL(cfg.LichessBaseURL),
		lichess.WithTimeout(cfg.FetchTimeout),
		lichess.WithMaxPGNBytes(cfg.MaxPGNBytes),
	), fetchPool)
	viewerService := services.NewViewerService(client, pgn.NewExtractor(pgn.NewChessEngine))

	srv := &api.Server{
		ViewerService:      viewerService,
		Registry:           inflight.NewRegistry(),
		Templates:          tmpl,
		RequestTimeout:     cfg.RequestTimeout,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
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

	log.Debug("stopping fetch pool")
	cancel()
	fetchPool.Stop()

	log.Info("===========================================")
	log.Info("Movetable Server Stopped")
	log.Info("===========================================")
}
