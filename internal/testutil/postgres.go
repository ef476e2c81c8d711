//go:build integration

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/database"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPostgresServer starts a disposable Postgres, applies the migrations and
// returns a Server whose DB points at it. The container is terminated when
// the test ends.
func NewPostgresServer(t *testing.T) *server.Server {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ecommerce_api_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.Database.URL = dsn

	s := NewServer(cfg)
	require.NoError(t, database.Migrate(ctx, s.Logger, cfg))

	db, err := database.New(cfg, s.Logger, s.LoggerService)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s.DB = db
	return s
}
