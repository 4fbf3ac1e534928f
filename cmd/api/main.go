// Products API: user authentication and product CRUD over PostgreSQL.
//
// @title        Products API
// @version      1.0
// @description  REST backend with JWT authentication and role-based access.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/api-productos/products-api/internal/api"
	"github.com/api-productos/products-api/internal/auth"
	"github.com/api-productos/products-api/internal/infrastructure/config"
	"github.com/api-productos/products-api/internal/infrastructure/db/postgres"
	"github.com/api-productos/products-api/pkg/logger"
)

func main() {
	// Best effort: a missing .env file is fine outside development.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	if cfg.UsingInsecureSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the insecure development default")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTExpire)
	e := api.NewRouter(db, codec, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
