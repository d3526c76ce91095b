package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"gavel/internal/config"
	"gavel/internal/logging"
	"gavel/internal/server"
	"gavel/internal/version"
)

func main() {
	// Missing .env is fine; real deployments configure the environment
	// directly.
	_ = godotenv.Load()

	cfg := config.New()
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	slog.Info("starting gavel", "version", version.Version)

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("using the default JWT secret; set JWT_SECRET in production")
	}

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
