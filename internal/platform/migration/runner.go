// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the embedded schema migrations with golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Result reports the schema version before and after [Up].
type Result struct {
	From uint
	To   uint
}

// Changed reports whether any migration ran.
func (result Result) Changed() bool {
	return result.From != result.To
}

/*
Up applies every pending up migration found at the root of files.

A database left dirty by a failed migration is refused; it needs a manual
`migrate force` before the service can start.

Parameters:
  - dsn: postgres:// or postgresql:// URL
  - files: Filesystem holding NNNNNN_name.up.sql / .down.sql
  - logger: Receives golang-migrate output at debug level

Returns:
  - Result: Versions before and after
  - error: Source, connection or migration failures
*/
func Up(dsn string, files fs.FS, logger *slog.Logger) (Result, error) {
	source, err := iofs.New(files, ".")
	if err != nil {
		return Result{}, fmt.Errorf("migration: open source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, pgx5URL(dsn))
	if err != nil {
		return Result{}, fmt.Errorf("migration: connect: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := migrator.Close(); sourceErr != nil || dbErr != nil {
			logger.Warn("migration_close_failed",
				slog.Any("source_error", sourceErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()
	migrator.Log = logAdapter{logger: logger}

	from, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Result{}, fmt.Errorf("migration: read version: %w", err)
	}
	if dirty {
		return Result{From: from, To: from}, fmt.Errorf("migration: schema is dirty at version %d", from)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return Result{From: from}, fmt.Errorf("migration: up: %w", err)
	}

	to, _, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Result{From: from}, fmt.Errorf("migration: read version: %w", err)
	}
	return Result{From: from, To: to}, nil
}

// pgx5URL rewrites the scheme to the one the pgx/v5 driver registers.
func pgx5URL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

type logAdapter struct {
	logger *slog.Logger
}

func (adapter logAdapter) Printf(format string, args ...any) {
	adapter.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (adapter logAdapter) Verbose() bool {
	return false
}
