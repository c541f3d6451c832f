// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shelfbook

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// %s is the WHERE clause.
var selectPlacements = fmt.Sprintf(`
	SELECT p.%s, p.%s, b.%s
	FROM %s p
	JOIN %s b ON b.%s = p.%s
	%%s
	ORDER BY p.%s, b.%s`,
	schema.BookshelfBooks.BookshelfID, schema.BookshelfBooks.BookID, schema.Book.Title,
	schema.BookshelfBooks.Table,
	schema.Book.Table, schema.Book.ID, schema.BookshelfBooks.BookID,
	schema.BookshelfBooks.BookshelfID, schema.Book.Title,
)

func (repository *PostgresRepository) ListPlacements(context context.Context) ([]*Placement, error) {
	return repository.queryPlacements(context, fmt.Sprintf(selectPlacements, ""))
}

func (repository *PostgresRepository) ListByShelf(context context.Context, bookshelfID int) ([]*Placement, error) {
	where := fmt.Sprintf("WHERE p.%s = $1", schema.BookshelfBooks.BookshelfID)
	return repository.queryPlacements(context, fmt.Sprintf(selectPlacements, where), bookshelfID)
}

func (repository *PostgresRepository) BookExists(context context.Context, bookID int) (bool, error) {
	found, err := postgres.Exists(context, repository.db, schema.Book.Table, schema.Book.ID, bookID)
	return found, dberr.Wrap(err, "probe_book")
}

func (repository *PostgresRepository) ShelfExists(context context.Context, bookshelfID int) (bool, error) {
	found, err := postgres.Exists(context, repository.db, schema.Bookshelf.Table, schema.Bookshelf.ID, bookshelfID)
	return found, dberr.Wrap(err, "probe_bookshelf")
}

func (repository *PostgresRepository) CreatePlacement(context context.Context, placement Placement) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BookshelfBooks.Table, schema.BookshelfBooks.BookshelfID, schema.BookshelfBooks.BookID)

	_, err := repository.db.Exec(context, query, placement.BookshelfID, placement.BookID)
	return dberr.Wrap(err, "create_bookshelf_book")
}

func (repository *PostgresRepository) MovePlacement(context context.Context, from, to Placement) error {
	query := fmt.Sprintf(`UPDATE %[1]s SET %[2]s = $3, %[3]s = $4 WHERE %[2]s = $1 AND %[3]s = $2`,
		schema.BookshelfBooks.Table, schema.BookshelfBooks.BookshelfID, schema.BookshelfBooks.BookID)

	cmd, err := repository.db.Exec(context, query, from.BookshelfID, from.BookID, to.BookshelfID, to.BookID)
	if err != nil {
		return dberr.Wrap(err, "move_bookshelf_book")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePlacement(context context.Context, placement Placement) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.BookshelfBooks.Table, schema.BookshelfBooks.BookshelfID, schema.BookshelfBooks.BookID)

	cmd, err := repository.db.Exec(context, query, placement.BookshelfID, placement.BookID)
	if err != nil {
		return dberr.Wrap(err, "delete_bookshelf_book")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) queryPlacements(context context.Context, query string, args ...any) ([]*Placement, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bookshelf_books")
	}
	defer rows.Close()

	placements := []*Placement{}
	for rows.Next() {
		p := &Placement{}
		if err := rows.Scan(&p.BookshelfID, &p.BookID, &p.Title); err != nil {
			return nil, dberr.Wrap(err, "scan_bookshelf_book")
		}
		placements = append(placements, p)
	}
	return placements, dberr.Wrap(rows.Err(), "list_bookshelf_books")
}
