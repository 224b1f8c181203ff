package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/courtcms/courtcms/internal/config"
	"github.com/courtcms/courtcms/internal/database"
	"github.com/courtcms/courtcms/internal/server"
	"github.com/courtcms/courtcms/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		log.Info("Database migrations completed successfully")
		return
	}

	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed database", "error", err)
		}
	}

	srv := server.New(cfg, db, log)

	log.Info("Starting Court Case Management service",
		"host", cfg.Host,
		"port", cfg.Port,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
