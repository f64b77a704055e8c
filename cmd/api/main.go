// Package main is the entrypoint for the storefront commerce API server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/commerce-api/internal/api"
	"github.com/storefront/commerce-api/internal/api/handler"
	"github.com/storefront/commerce-api/internal/api/middleware"
	"github.com/storefront/commerce-api/internal/core/service"
	mongodb "github.com/storefront/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/commerce-api/internal/infrastructure/db/redis"
	"github.com/storefront/commerce-api/internal/infrastructure/queue"
	"github.com/storefront/commerce-api/internal/pkg/config"
	"github.com/storefront/commerce-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":   userRepo.EnsureIndexes,
		"reviews": reviewRepo.EnsureIndexes,
		"orders":  orderRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		_ = rdb.Close()
	}()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	sessions := redisdb.NewSessionStore(rdb, cfg.TokenTTL)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// --- Rating pipeline ---
	ratingService := service.NewRatingService(reviewRepo, productRepo, log)
	dispatcher := queue.NewDispatcher(cfg.RatingWorkers, ratingService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, sessions, log)
	userService := service.NewUserService(userRepo, tokens, sessions, log)
	productService := service.NewProductService(productRepo, reviewRepo, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, dispatcher, log)
	orderService := service.NewOrderService(orderRepo, productRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.Handlers{
		Auth:      handler.NewAuthHandler(authService, tokens.TTL()),
		User:      handler.NewUserHandler(userService, tokens.TTL()),
		Product:   handler.NewProductHandler(productService),
		Review:    handler.NewReviewHandler(reviewService),
		Order:     handler.NewOrderHandler(orderService),
		Health:    handler.NewHealthHandler(),
		Readiness: handler.NewReadinessHandler(db, rdb),
	}, middleware.Auth(cfg.JWTSecret, sessions), log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront API listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
