// Package pgtest starts a throwaway Postgres with the campus schema for
// storage tests.
package pgtest

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:17-alpine"

// MigrationsDir returns the absolute path of database/migrations.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "database", "migrations")
}

// New starts a container, applies the up migrations and returns a pool that
// is closed, together with the container, when the test ends. It skips the
// test under -short or when no container provider is available.
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, DSN(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))

	return pool
}

// DSN starts a migrated container like New and returns its connection string.
func DSN(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase("campus"),
		postgres.WithUsername("campus"),
		postgres.WithPassword("campus"),
		postgres.WithInitScripts(filepath.Join(MigrationsDir(), "001_init.up.sql")),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return dsn
}
