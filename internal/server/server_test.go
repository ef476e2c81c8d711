package server

import (
	"context"
	"testing"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareServer() *Server {
	logger := zerolog.Nop()
	return &Server{Config: &config.Config{}, Logger: &logger}
}

func TestReleaseClosesRedis(t *testing.T) {
	s := newBareServer()
	s.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	require.NoError(t, s.release())

	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestShutdownWithoutHTTPServer(t *testing.T) {
	s := newBareServer()
	s.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	require.NoError(t, s.Shutdown(context.Background()))

	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestStartRequiresSetup(t *testing.T) {
	assert.EqualError(t, newBareServer().Start(), "HTTP server not initialized")
}
