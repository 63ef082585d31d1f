package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vokinneberg/lawgpt-api/internal/config"
	"github.com/vokinneberg/lawgpt-api/internal/legal"
	"github.com/vokinneberg/lawgpt-api/internal/llm"

	httphandler "github.com/vokinneberg/lawgpt-api/internal/http"
)

func main() {
	// Load .env before reading the environment
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found", "error", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if _, source := config.Resolve(cfg.CredentialSources()...); source != "" {
		slog.Info("Server credential configured", "source", source)
	} else {
		slog.Warn("No server credential configured; callers must send " + httphandler.APIKeyHeader)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.OpenAITimeout)
	slog.Info("Initialized OpenAI client", "model", llmClient.Model())

	assistant := legal.NewAssistant(llmClient)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(assistant, cfg.CredentialSources()...)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
