package main

import (
	"context"
	"os"

	"seafood-exporter-api/internal/config"
	"seafood-exporter-api/internal/repository"
	"seafood-exporter-api/internal/service"
	"seafood-exporter-api/pkg/database"
	"seafood-exporter-api/pkg/logger"
	"seafood-exporter-api/pkg/validator"
)

func main() {
	// 1. Load Env
	cfg, _, err := config.Load()
	logx.Init(logx.LoggerOpts{})
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. Setup Database
	ctx := context.Background()
	store, err := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.ConnectTimeout())
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect to database")
	}
	if !store.Available() {
		logx.Fatal().Msg("DATABASE_URL not set, nothing to seed")
	}
	defer store.Close(ctx)

	if store.SQL != nil {
		if err := repository.Migrate(store.SQL); err != nil {
			logx.Fatal().Err(err).Msg("auto migrate failed")
		}
	}

	// 3. Skip if the catalog already has products
	productRepo := repository.NewProductRepo(store)
	existing, err := productRepo.FindByCategory(ctx, "")
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to read catalog")
	}
	if len(existing) > 0 {
		logx.Info().Int("count", len(existing)).Msg("catalog already populated, nothing to do")
		return
	}

	// 4. Insert the sample catalog
	for _, p := range service.FallbackProducts() {
		p := p
		if errs := validator.ValidateStruct(&p); len(errs) > 0 {
			logx.Fatal().Str("product", p.Name).Interface("errors", errs).Msg("invalid sample product")
		}
		if err := productRepo.Create(ctx, &p); err != nil {
			logx.Error().Err(err).Str("product", p.Name).Msg("failed to insert product")
			os.Exit(1)
		}
		logx.Info().Str("product", p.Name).Str("category", p.Category).Msg("✅ product inserted")
	}
}
