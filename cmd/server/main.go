package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoroute-service/internal/adapters/cache"
	"ecoroute-service/internal/adapters/geocode"
	"ecoroute-service/internal/adapters/routing"
	"ecoroute-service/internal/adapters/vehicles"
	"ecoroute-service/internal/adapters/weather"
	"ecoroute-service/internal/api"
	"ecoroute-service/internal/config"
	"ecoroute-service/internal/platform/db"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"
	"ecoroute-service/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (ORS, Open-Meteo, optional Postgres and Redis
// caches) behind ports and starts the HTTP server.
func main() {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if !dotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := vehicles.Default()
	if err != nil {
		return err
	}

	ors, err := routing.NewORSProvider(cfg.ORS.APIKey, cfg.ORS.BaseURL, cfg.Fetch.RouteTimeout, logger)
	if err != nil {
		return err
	}

	var geocoder ports.Geocoder = ors
	if cfg.Geocoder.Kind == "google" {
		g, err := geocode.NewGoogleGeocoder(cfg.Geocoder.GoogleAPIKey, cfg.Geocoder.Timeout, "", logger)
		if err != nil {
			return err
		}
		geocoder = g
	}

	// Geocode results persist in Postgres when DATABASE_URL is set.
	if cfg.DatabaseURL != "" {
		sqlDB, err := openCacheDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		geocoder = cache.NewCachedGeocoder(geocoder, cache.NewSQLGeocodeCache(sqlDB, logger), logger)
		logger.Info("geocode cache enabled", zap.String("backend", "postgres"))
	}

	var wx ports.WeatherProvider = weather.NewOpenMeteoProvider(cfg.Weather.BaseURL, cfg.Weather.Timeout, logger)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, weather cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			wx = cache.NewRedisWeatherCache(wx, rdb, cfg.Weather.CacheTTL, logger)
			logger.Info("weather cache enabled", zap.String("backend", "redis"), zap.Duration("ttl", cfg.Weather.CacheTTL))
		}
	}

	fetcher := services.NewFetchOrchestrator(ors, wx, logger, cfg.Fetch.Concurrency, cfg.Fetch.RouteTimeout)
	routes := services.NewEcoRouteService(catalog, geocoder, fetcher, services.CandidateOptions{
		ViaAlong:  cfg.Fetch.ViaAlong,
		ViaPerp:   cfg.Fetch.ViaPerp,
		ViaSpread: cfg.Fetch.ViaSpread,
	}, logger)
	places := services.NewPlaceService(ors, logger)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Deps{
		Catalog: catalog,
		Routes:  routes,
		Places:  places,
		Log:     logger,
	})

	// Timeouts are sized for a cold fan-out of every candidate request.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.Int("vehicles", len(catalog.All())))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openCacheDB(ctx context.Context, databaseURL string, maxConns int) (*sql.DB, error) {
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool := db.DefaultPoolOptions()
	pool.MaxOpen = maxConns
	sqlDB, err := db.Open(openCtx, databaseURL, pool)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(openCtx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
