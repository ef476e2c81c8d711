// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - optional redis client
//   - optional background job worker server (asynq)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/config"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/database"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/Bishop-Massey-Knapp/ecommerce-api/internal/logger"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; that lives in httpServer.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	// Redis is nil when no redis address is configured.
	Redis *redis.Client

	// Job is nil when background jobs are disabled (see config.JobsEnabled).
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
//   - PostgreSQL pool (startup fails if the database is unreachable)
//   - Redis client when configured (an unreachable Redis is logged, not fatal)
//   - JobService when jobs are enabled
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})

		if loggerService.GetApplication() != nil {
			redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
		}

		server.Redis = redisClient
	}

	if cfg.JobsEnabled() {
		jobService := job.NewJobService(logger, cfg)
		jobService.InitHandlers(cfg, logger)

		if err := jobService.Start(); err != nil {
			_ = jobService.Client.Close()
			_ = server.release()
			return nil, fmt.Errorf("failed to start job server: %w", err)
		}

		server.Job = jobService
	} else {
		logger.Info().Msg("background jobs disabled")
	}

	return server, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, then releases the database pool,
// the redis client and the job server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	return s.release()
}

// release closes every dependency the Server holds. All of them are closed
// even when one fails; only the database error is returned.
func (s *Server) release() error {
	var dbErr error
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			dbErr = fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	return dbErr
}
