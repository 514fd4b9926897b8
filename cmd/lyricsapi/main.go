// cmd/lyricsapi/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lyricsapi/config"
	"lyricsapi/internal/api"
	"lyricsapi/internal/api/handlers/lookup"
	"lyricsapi/internal/api/middleware"
	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/musicapi"
	"lyricsapi/internal/service"
)

// @title Lyrics API
// @version 1.1.0
// @description Song lyrics, artist info and song search backed by Genius.

// @host localhost:3000
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	// 2. Init logger
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Lyrics API", zap.String("version", lookup.Version))
	utils.Logger.Debug("Configuration loaded",
		zap.Int("port", cfg.ServerPort),
		zap.String("genius_base_url", cfg.GeniusBaseURL),
		zap.Bool("genius_token_set", cfg.GeniusAccessToken != ""),
		zap.Duration("genius_timeout", cfg.GeniusTimeout),
		zap.Float64("genius_rps", cfg.GeniusRPS),
		zap.Duration("rate_limit_window", cfg.RateLimitWindow),
		zap.Int("rate_limit_max", cfg.RateLimitMax),
	)

	// 3. External client, service, handlers
	musicAPIClient := musicapi.NewGeniusClient(cfg.GeniusBaseURL, cfg.GeniusAccessToken, cfg.GeniusTimeout, cfg.GeniusRPS)
	lyricsService := service.NewLyricsService(musicAPIClient)
	lookupHandlers := lookup.NewLookupHandlers(lyricsService)

	// 4. Router with middleware chain
	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	router := api.NewRouter(lookupHandlers, limiter)

	// 5. Start server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Info("Lyrics API running", zap.String("address", fmt.Sprintf("http://localhost:%d", cfg.ServerPort)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			utils.Logger.Fatal("Server failed", zap.Error(err))
		}
	case <-ctx.Done():
		utils.Logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
