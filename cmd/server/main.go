package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/proproperty/valuation-api/docs"
	"github.com/proproperty/valuation-api/internal/api"
	"github.com/proproperty/valuation-api/internal/core/model"
	mongodb "github.com/proproperty/valuation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/proproperty/valuation-api/internal/infrastructure/db/redis"
	"github.com/proproperty/valuation-api/internal/infrastructure/media"
	"github.com/proproperty/valuation-api/internal/pkg/config"
	"github.com/proproperty/valuation-api/pkg/logger"
)

// @title        ProProperty Valuation API
// @version      1.0
// @description  Property valuation service: price estimates, prediction ledger, analytics.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New("valuation-api", logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewPredictionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("prediction index creation failed")
	}

	// Redis only backs the geocode cache; start without it when unreachable.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, geocode caching disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// A missing model artifact degrades valuations to 503; everything else
	// keeps working.
	artifact, err := model.Load(cfg.Model.WeightsPath, cfg.Model.ColumnsPath)
	if err != nil {
		log.Warn().Err(err).Msg("valuation model not loaded")
		artifact = nil
	} else {
		log.Info().Int("columns", len(artifact.Columns())).Msg("valuation model loaded")
	}

	store, err := media.NewStore(cfg.Media.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("media store init failed")
	}

	e := api.NewRouter(api.Deps{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Artifact: artifact,
		Media:    store,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
