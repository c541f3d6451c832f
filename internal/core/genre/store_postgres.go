// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/internal/platform/postgres"
	"github.com/taibuivan/shelfwise/pkg/slice"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectGenres = fmt.Sprintf(`SELECT %s, %s FROM %s`,
	schema.Genre.ID, schema.Genre.Name, schema.Genre.Table)

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	rows, err := repository.db.Query(context, selectGenres+" ORDER BY "+schema.Genre.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := []*Genre{}
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}
	return genres, dberr.Wrap(rows.Err(), "list_genres")
}

func (repository *PostgresRepository) GetGenre(context context.Context, id int) (*Genre, error) {
	return repository.getOne(context, selectGenres+fmt.Sprintf(" WHERE %s = $1", schema.Genre.ID), id)
}

func (repository *PostgresRepository) GetGenreByName(context context.Context, name string) (*Genre, error) {
	return repository.getOne(context, selectGenres+fmt.Sprintf(" WHERE %s = $1", schema.Genre.Name), name)
}

func (repository *PostgresRepository) getOne(context context.Context, query string, arg any) (*Genre, error) {
	g := &Genre{}
	err := repository.db.QueryRow(context, query, arg).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}

func (repository *PostgresRepository) CreateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.ID)
	return dberr.Wrap(repository.db.QueryRow(context, query, g.Name).Scan(&g.ID), "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, query, g.ID, g.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Genre.Table, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountBooks(context context.Context, id int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.BookGenre.Table, schema.BookGenre.GenreID)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_genre_books")
	}
	return total, nil
}

var resolveQuery = fmt.Sprintf(`
	WITH inserted AS (
		INSERT INTO %[1]s (%[2]s) VALUES ($1)
		ON CONFLICT (%[2]s) DO NOTHING
		RETURNING %[3]s
	)
	SELECT %[3]s FROM inserted
	UNION ALL
	SELECT %[3]s FROM %[1]s WHERE %[2]s = $1
	LIMIT 1`,
	schema.Genre.Table, schema.Genre.Name, schema.Genre.ID)

/*
ResolveAll maps each genre name to its id, creating genres that do not exist.

Names are matched exactly and case-sensitively. Duplicate names in the input
are resolved once, so the returned ids are unique and follow first appearance.

Parameters:
  - context: context.Context
  - db: A pool or an open transaction
  - names: Genre names

Returns:
  - []int: Genre ids
  - error: Storage failures
*/
func ResolveAll(context context.Context, db postgres.Querier, names []string) ([]int, error) {
	names = slice.Unique(names)
	ids := make([]int, 0, len(names))

	for _, name := range names {
		var id int
		err := db.QueryRow(context, resolveQuery, name).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			err = db.QueryRow(context, resolveQuery, name).Scan(&id)
		}
		if err != nil {
			return nil, dberr.Wrap(err, "resolve_genre")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
