package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ongcloud/backend/internal/infrastructure/config"
	"github.com/ongcloud/backend/internal/infrastructure/logger"
	"github.com/ongcloud/backend/internal/infrastructure/persistence"
	"github.com/ongcloud/backend/internal/infrastructure/seed"
)

func main() {
	var (
		fixturePath string
		logLevel    string
	)

	flag.StringVar(&fixturePath, "fixture", "", "Path to seed fixture file (default: seed.path from config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(config.LogConfig{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated successfully")

	case "seed":
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}

		path := fixturePath
		if path == "" {
			path = cfg.Seed.Path
		}

		fixture, err := seed.LoadFile(path)
		if err != nil {
			log.Fatal("Failed to load seed fixture",
				zap.String("path", path),
				zap.Error(err))
		}

		if err := seed.Apply(context.Background(), db.DB, fixture); err != nil {
			log.Fatal("Failed to apply seed fixture", zap.Error(err))
		}
		log.Info("Seed data applied successfully", zap.String("path", path))

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up      Create or update the database schema
  seed    Migrate the schema, then load seed data from a YAML fixture

Flags:
  -fixture string     Path to seed fixture file (default: seed.path from config)
  -log-level string   Log level (default: info)`)
}
