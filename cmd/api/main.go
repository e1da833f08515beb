package main

import (
	"context"
	"os"
	"time"

	"seafood-exporter-api/internal/config"
	"seafood-exporter-api/internal/handler"
	"seafood-exporter-api/internal/repository"
	"seafood-exporter-api/internal/server"
	"seafood-exporter-api/internal/service"
	"seafood-exporter-api/internal/ws"
	"seafood-exporter-api/pkg/database"
	"seafood-exporter-api/pkg/logger"
	redisx "seafood-exporter-api/pkg/redis"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// 1. Load Env
	cfg, foundDotEnv, err := config.Load()
	logx.Init(logx.LoggerOpts{Production: cfg != nil && cfg.Environment().IsProduction()})
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	if !foundDotEnv {
		logx.Debug().Msg(".env file not found, using process environment")
	}

	ctx := context.Background()

	// 2. Setup Database (optional; without it the API serves fallbacks)
	store := openStore(ctx, cfg)

	// 3. Setup Redis for the inquiry limiter (optional)
	rdb, limiterStorage := openRedis(ctx, cfg)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(store)
	inquiryRepo := repository.NewInquiryRepo(store)

	catalogService := service.NewCatalogService(productRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, wsHub)

	var cachePing func(context.Context) error
	if rdb != nil {
		cachePing = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	systemHandler := handler.NewSystemHandler(store, string(store.Kind), store.Name, cfg.DatabaseURL != "", cachePing)

	// 6. Setup Fiber
	app := server.NewApp(server.Deps{
		Catalog:          catalogService,
		Inquiry:          inquiryService,
		System:           systemHandler,
		Hub:              wsHub,
		JWTSecret:        []byte(cfg.JWTSecret),
		InquiryRateLimit: cfg.InquiryRateLimit,
		LimiterStorage:   limiterStorage,
	})
	if cfg.JWTSecret == "" {
		logx.Warn().Msg("JWT_SECRET not set, admin routes are disabled")
	}

	go func() {
		logx.Info().Str("port", cfg.Port).Str("store", string(store.Kind)).Msg("starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// 7. Graceful Shutdown
	wait := gfshutdown.GracefulShutdown(ctx, shutdownTimeout, map[string]gfshutdown.Operation{
		"fiber": func(ctx context.Context) error {
			wsHub.Stop()
			return app.ShutdownWithContext(ctx)
		},
		"store": func(ctx context.Context) error {
			return store.Close(ctx)
		},
		"redis": func(ctx context.Context) error {
			return closeRedis(rdb, limiterStorage)
		},
	})

	exitCode := <-wait
	logx.Info().Int("code", exitCode).Msg("server exited")
	os.Exit(exitCode)
}

// openStore never fails: connection problems are logged and the API runs
// against the fallback data instead.
func openStore(ctx context.Context, cfg *config.Config) *database.Store {
	store, err := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.ConnectTimeout())
	if err != nil {
		logx.Warn().Err(err).Msg("database unavailable, serving fallback data")
		return &database.Store{Kind: database.KindNone}
	}

	if !store.Available() {
		logx.Warn().Msg("DATABASE_URL not set, serving fallback data")
		return store
	}

	if store.SQL != nil {
		if err := repository.Migrate(store.SQL); err != nil {
			logx.Warn().Err(err).Msg("auto migrate failed")
		}
	}
	logx.Info().Str("backend", string(store.Kind)).Str("name", store.Name).Msg("database connection established")
	return store
}

func openRedis(ctx context.Context, cfg *config.Config) (*redis.Client, fiber.Storage) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	rdb, err := (&redisx.Config{URL: cfg.RedisURL, DialTimeout: cfg.ConnectTimeout()}).New(ctx)
	if err != nil {
		logx.Warn().Err(err).Msg("redis unavailable, inquiry limiter uses memory")
		return nil, nil
	}

	storage := fiberredis.New(fiberredis.Config{URL: cfg.RedisURL})
	logx.Info().Msg("inquiry limiter backed by redis")
	return rdb, storage
}

func closeRedis(rdb *redis.Client, storage fiber.Storage) error {
	if storage != nil {
		if err := storage.Close(); err != nil {
			return err
		}
	}
	if rdb != nil {
		return rdb.Close()
	}
	return nil
}
