// Package main is the entry point for the Ogiri Battle API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ogiribattle/src/app/server"
	"ogiribattle/src/core/ports"
	"ogiribattle/src/infra/config"
	"ogiribattle/src/infra/db"
	"ogiribattle/src/infra/logger"
	"ogiribattle/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best-effort .env loading for local development
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"storage", cfg.Scoring.Storage,
	)

	ctx := context.Background()

	// Initialize storage backend
	var gameRepo ports.GameRepository
	switch cfg.Scoring.Storage {
	case config.StoragePostgres:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		pgRepo := repo.NewPostgresRepository(pg, log)
		if err := pgRepo.Migrate(ctx); err != nil {
			return err
		}
		gameRepo = pgRepo
	default:
		memRepo := repo.NewMemoryRepository()
		if cfg.Scoring.DemoSeed {
			if err := repo.SeedDemo(ctx, memRepo); err != nil {
				return err
			}
			log.Info("demo data seeded")
		}
		gameRepo = memRepo
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, gameRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
