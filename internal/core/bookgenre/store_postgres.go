// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookgenre

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

var selectLinks = fmt.Sprintf(`SELECT %s, %s FROM %s`,
	schema.BookGenre.BookID, schema.BookGenre.GenreID, schema.BookGenre.Table)

func (repository *PostgresRepository) ListLinks(context context.Context) ([]*Link, error) {
	return repository.queryLinks(context,
		selectLinks+fmt.Sprintf(" ORDER BY %s, %s", schema.BookGenre.BookID, schema.BookGenre.GenreID))
}

func (repository *PostgresRepository) ListByBook(context context.Context, bookID int) ([]*Link, error) {
	return repository.queryLinks(context,
		selectLinks+fmt.Sprintf(" WHERE %s = $1 ORDER BY %s", schema.BookGenre.BookID, schema.BookGenre.GenreID), bookID)
}

func (repository *PostgresRepository) ListByGenre(context context.Context, genreID int) ([]*Link, error) {
	return repository.queryLinks(context,
		selectLinks+fmt.Sprintf(" WHERE %s = $1 ORDER BY %s", schema.BookGenre.GenreID, schema.BookGenre.BookID), genreID)
}

func (repository *PostgresRepository) BookExists(context context.Context, bookID int) (bool, error) {
	found, err := postgres.Exists(context, repository.db, schema.Book.Table, schema.Book.ID, bookID)
	return found, dberr.Wrap(err, "probe_book")
}

func (repository *PostgresRepository) GenreExists(context context.Context, genreID int) (bool, error) {
	found, err := postgres.Exists(context, repository.db, schema.Genre.Table, schema.Genre.ID, genreID)
	return found, dberr.Wrap(err, "probe_genre")
}

func (repository *PostgresRepository) CreateLink(context context.Context, link Link) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID)

	_, err := repository.db.Exec(context, query, link.BookID, link.GenreID)
	return dberr.Wrap(err, "create_book_genre")
}

func (repository *PostgresRepository) MoveLink(context context.Context, from, to Link) error {
	query := fmt.Sprintf(`UPDATE %[1]s SET %[2]s = $3, %[3]s = $4 WHERE %[2]s = $1 AND %[3]s = $2`,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID)

	cmd, err := repository.db.Exec(context, query, from.BookID, from.GenreID, to.BookID, to.GenreID)
	if err != nil {
		return dberr.Wrap(err, "move_book_genre")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteLink(context context.Context, link Link) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID)

	cmd, err := repository.db.Exec(context, query, link.BookID, link.GenreID)
	if err != nil {
		return dberr.Wrap(err, "delete_book_genre")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) queryLinks(context context.Context, query string, args ...any) ([]*Link, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_genres")
	}
	defer rows.Close()

	links := []*Link{}
	for rows.Next() {
		link := &Link{}
		if err := rows.Scan(&link.BookID, &link.GenreID); err != nil {
			return nil, dberr.Wrap(err, "scan_book_genre")
		}
		links = append(links, link)
	}
	return links, dberr.Wrap(rows.Err(), "list_book_genres")
}
