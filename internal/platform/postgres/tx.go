// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the statement surface shared by [*pgxpool.Pool] and [pgx.Tx].
//
// Helpers that accept a Querier run unchanged inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults
}

var (
	_ Querier = (*pgxpool.Pool)(nil)
	_ Querier = (pgx.Tx)(nil)
)

// WithTx runs fn inside a transaction and commits when fn returns nil.
//
// Any error from fn, or a panic, rolls the transaction back. The error from
// fn is returned unchanged so callers can still match on domain errors.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	transaction, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer transaction.Rollback(ctx)

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

/*
ReplaceJunction deletes every (ownerColumn = ownerID) row of a join table and
inserts one row per value, so the final link set equals values exactly.

Parameters:
  - ctx: context.Context
  - db: Normally an open transaction, so the delete and inserts commit together
  - table, ownerColumn, valueColumn: Join table layout
  - ownerID: The owning row
  - values: The complete new set of linked ids
*/
func ReplaceJunction(ctx context.Context, db Querier, table, ownerColumn, valueColumn string, ownerID int, values []int) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, ownerColumn)
	if _, err := db.Exec(ctx, deleteQuery, ownerID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	if len(values) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, ownerColumn, valueColumn)
	batch := &pgx.Batch{}
	for _, value := range values {
		batch.Queue(insertQuery, ownerID, value)
	}

	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", table, err)
	}
	return nil
}
