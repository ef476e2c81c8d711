// Package testutil provides test doubles and fixtures shared by the
// package tests: an in-memory store standing in for the repositories, a
// ready-made Server, and (behind the integration tag) a Postgres container.
package testutil

import (
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/config"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/rs/zerolog"

	loggerPkg "github.com/Bishop-Massey-Knapp/ecommerce-api/internal/logger"
)

// NewConfig returns a valid development config with rate limiting off.
func NewConfig() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.Environment = config.EnvDevelopment

	return &config.Config{
		Primary: config.Primary{Env: config.EnvDevelopment},
		Server: config.ServerConfig{
			Port:               config.DefaultPort,
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    30,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			URL:      config.DefaultDatabaseURL,
			MaxConns: 4,
		},
		Observability: obs,
	}
}

// NewServer returns a Server without database, Redis or jobs. It is enough
// for handlers whose services are backed by a Store.
func NewServer(cfg *config.Config) *server.Server {
	logger := zerolog.Nop()

	return &server.Server{
		Config:        cfg,
		Logger:        &logger,
		LoggerService: loggerPkg.NewLoggerService(cfg.Observability),
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
