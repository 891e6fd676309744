package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberhall/mystery-engine/internal/config"
	"github.com/emberhall/mystery-engine/internal/handlers"
	"github.com/emberhall/mystery-engine/internal/logger"
	"github.com/emberhall/mystery-engine/internal/middleware"
	"github.com/emberhall/mystery-engine/internal/services"
	"github.com/emberhall/mystery-engine/pkg/catalog"
	"github.com/emberhall/mystery-engine/pkg/game"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Mystery Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"model_name", cfg.ModelName,
		"mock_mode", cfg.MockMode())

	// Absence of the credential selects the canned gateway; it never
	// blocks startup.
	var llmService services.LLMService
	if cfg.MockMode() {
		log.Info("GEMINI_API_KEY not set. Running in mock mode.")
		llmService = services.NewCannedService(services.DefaultCannedDelay, log)
	} else {
		log.Info("Using Gemini LLM provider", "model", cfg.ModelName)
		llmService = services.NewGeminiService(cfg.GeminiAPIKey, cfg.ModelName, log)
	}
	gateway := services.NewGateway(llmService, log)

	var store services.Store
	if cfg.RedisURL != "" {
		redisStore, err := services.NewRedisStore(cfg.RedisURL, cfg.SessionTTL, log)
		if err != nil {
			log.Error("Failed to configure Redis store", "error", err)
			os.Exit(1)
		}

		storageCtx, storageCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer storageCancel()
		if err := redisStore.Ping(storageCtx); err != nil {
			log.Error("Failed to connect to storage", "error", err)
			os.Exit(1)
		}
		log.Info("Storage connection established successfully")
		store = redisStore
	} else {
		log.Info("REDIS_URL not set. Using in-memory session store.")
		store = services.NewMemoryStore(cfg.SessionTTL, log)
	}

	engine := game.NewEngine(catalog.Default(), gateway, log)

	mux := http.NewServeMux()

	sessionHandler := handlers.NewSessionHandler(store, engine, log)
	mux.Handle("/session/start", sessionHandler)
	mux.Handle("/session/action", sessionHandler)

	healthHandler := handlers.NewHealthHandler(store, cfg.MockMode(), log)
	mux.Handle("/", healthHandler)

	handler := middleware.Logger(log, middleware.CORS(cfg.AllowedOrigins)(mux))
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
