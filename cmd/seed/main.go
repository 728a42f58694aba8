package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/telco/backend/internal/infrastructure/config"
	"github.com/telco/backend/internal/infrastructure/logger"
	"github.com/telco/backend/internal/infrastructure/persistence"
	"github.com/telco/backend/internal/infrastructure/seed"
	"go.uber.org/zap"
)

func main() {
	var (
		customers int
		fakerSeed uint64
		reset     bool
		logLevel  string
	)

	flag.IntVar(&customers, "customers", seed.DefaultOptions().Customers, "Number of customers to generate")
	flag.Uint64Var(&fakerSeed, "seed", seed.DefaultOptions().Seed, "Faker seed, 0 for random")
	flag.BoolVar(&reset, "reset", false, "Clear all existing data before seeding")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
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

	database, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	seeder := seed.New(database.DB, log, seed.Options{
		Customers: customers,
		Seed:      fakerSeed,
	})

	if reset {
		if err := seeder.Reset(ctx); err != nil {
			log.Fatal("Reset failed", zap.Error(err))
		}
	}
	if err := seeder.Run(ctx); err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}
}
