package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/api"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/app/service"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common/security"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/repository"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/platform/config"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/platform/database"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/platform/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load("3001")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	// 2. Logger
	l := logger.New(cfg.Env, api.UserServiceName)

	// 3. Initialize JWT
	tokens, err := security.NewTokenManager([]byte(cfg.JWTSecret), cfg.JWTExp())
	if err != nil {
		l.Fatal().Err(err).Msg("Could not initialize token manager")
	}

	// 4. Initialize Database
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DB)
	if err != nil {
		l.Fatal().Err(err).Msg("Could not connect to database")
	}
	defer func() {
		db.Close()
		l.Info().Msg("Database connection closed.")
	}()
	l.Info().Msg("Database connected.")

	if err := database.Migrate(ctx, db, database.UserMigrations, l); err != nil {
		l.Fatal().Err(err).Msg("Could not apply migrations")
	}

	// 5. Repositories & Services
	userRepo := repository.NewPgUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)

	// 6. Router & HTTP Server
	router := api.NewUserRouter(authService, api.Options{
		Logger:         l,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		DB:             db,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		l.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Str("port", cfg.Port).Msg("Could not listen")
		}
	}()

	<-stop
	l.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("Server shutdown failed")
		return
	}
	l.Info().Msg("Server stopped gracefully.")
}
