package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/config"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/database"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/handler"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/logger"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/repository"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/router"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	err = run(cfg, &log, loggerService)

	// Flush New Relic before any exit, including failed startups.
	loggerService.Shutdown()

	if err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}

	log.Info().Msg("server exited properly")
}

func run(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	defer cancelMigrate()

	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-serveErr:
		if startErr != nil {
			startErr = fmt.Errorf("failed to start server: %w", startErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	return startErr
}
