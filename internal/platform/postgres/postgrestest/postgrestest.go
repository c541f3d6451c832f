// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package postgrestest provisions a migrated, throwaway Postgres schema for
repository tests.

Tests are skipped unless SHELFWISE_TEST_DATABASE_URL points at a reachable
server, so `go test ./...` stays green on machines without one.
*/
package postgrestest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/data/migrations"
	"github.com/taibuivan/shelfwise/internal/platform/migration"
	"github.com/taibuivan/shelfwise/internal/platform/postgres"
	"github.com/taibuivan/shelfwise/pkg/uuid"
)

// EnvDatabaseURL names the variable holding the test server DSN.
const EnvDatabaseURL = "SHELFWISE_TEST_DATABASE_URL"

/*
NewPool returns a pool bound to a fresh schema with every migration applied.

The schema is dropped when the test finishes.
*/
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	base := os.Getenv(EnvDatabaseURL)
	if base == "" {
		t.Skipf("%s not set; skipping Postgres test", EnvDatabaseURL)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	schemaName := "test_" + uuid.Simple()

	admin, err := pgx.Connect(ctx, base)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA %s`, schemaName))
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), fmt.Sprintf(`DROP SCHEMA %s CASCADE`, schemaName))
		_ = admin.Close(context.Background())
	})

	dsn, err := withSearchPath(base, schemaName)
	require.NoError(t, err)
	_, err = migration.Up(dsn, migrations.FS, logger)
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 4}, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func withSearchPath(dsn, schemaName string) (string, error) {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("postgrestest: %s must be a URL: %w", EnvDatabaseURL, err)
	}
	query := parsed.Query()
	query.Set("search_path", schemaName)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
