package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/canya/backend/internal/client"
	"github.com/canya/backend/internal/config"
	"github.com/canya/backend/internal/handler"
	"github.com/canya/backend/internal/service"
	"github.com/canya/backend/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	fs, err := store.New(cfg.Store.DataDir)
	if err != nil {
		slog.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}
	if err := fs.Seed(); err != nil {
		slog.Error("failed to seed data", "error", err)
		os.Exit(1)
	}

	var gen service.Generator
	if genAI, err := client.NewGenAIClient(cfg.GenAI); err != nil {
		slog.Warn("chatbot disabled", "error", err)
	} else {
		gen = genAI
	}

	router, err := handler.NewRouter(cfg, fs, gen)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	slog.Info("canya server listening", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
