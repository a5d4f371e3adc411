package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"ecoroute-service/internal/adapters/cache"
	"ecoroute-service/internal/config"
	"ecoroute-service/internal/platform/db"
	"ecoroute-service/internal/platform/obs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// dbtool prepares the Postgres geocode cache: it creates the schema and, when
// the seed file exists, primes the cache with well-known places.
func main() {
	config.LoadDotEnv()

	logger, err := obs.NewLogger(config.Get("APP_ENV", "development"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sqlDB, err := db.Open(ctx, databaseURL, db.DefaultPoolOptions())
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer sqlDB.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	if err := initAndSeed(ctx, sqlDB, seedPath, logger); err != nil {
		logger.Fatal("dbtool failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, sqlDB *sql.DB, seedPath string, logger *zap.Logger) error {
	logger.Info("initializing database schema")
	if err := db.InitSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info("schema ready")

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		logger.Info("no seed file, skipping", zap.String("path", seedPath))
		return nil
	}

	n, err := cache.SeedFromJSON(ctx, cache.NewSQLGeocodeCache(sqlDB, logger), seedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("seeding complete", zap.Int("places", n), zap.String("path", seedPath))
	return nil
}
