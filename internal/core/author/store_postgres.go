// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

var selectAuthors = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.Author.Columns(), ", "), schema.Author.Table)

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := selectAuthors + fmt.Sprintf(" ORDER BY %s, %s", schema.Author.LastName, schema.Author.FirstName)
	return repository.queryAuthors(context, query)
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := selectAuthors + fmt.Sprintf(" WHERE %s = $1", schema.Author.ID)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.FirstName, &a.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) ([]*Author, error) {
	query := selectAuthors + fmt.Sprintf(" WHERE %s = $1 OR %s = $1 ORDER BY %s",
		schema.Author.FirstName, schema.Author.LastName, schema.Author.ID)
	return repository.queryAuthors(context, query, name)
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.Author.Table, schema.Author.FirstName, schema.Author.LastName, schema.Author.ID)

	err := repository.db.QueryRow(context, query, a.FirstName, a.LastName).Scan(&a.ID)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.Author.Table, schema.Author.FirstName, schema.Author.LastName, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, a.ID, a.FirstName, a.LastName)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountBooks(context context.Context, id int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.AuthorID)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_author_books")
	}
	return total, nil
}

func (repository *PostgresRepository) queryAuthors(context context.Context, query string, args ...any) ([]*Author, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}
	return authors, dberr.Wrap(rows.Err(), "list_authors")
}

// resolveQuery inserts the name pair unless it exists and returns its id
// either way. The CTE sees the pre-statement snapshot, so exactly one of the
// two branches yields a row.
var resolveQuery = fmt.Sprintf(`
	WITH inserted AS (
		INSERT INTO %[1]s (%[2]s, %[3]s) VALUES ($1, $2)
		ON CONFLICT (%[2]s, %[3]s) DO NOTHING
		RETURNING %[4]s
	)
	SELECT %[4]s FROM inserted
	UNION ALL
	SELECT %[4]s FROM %[1]s WHERE %[2]s = $1 AND %[3]s = $2
	LIMIT 1`,
	schema.Author.Table, schema.Author.FirstName, schema.Author.LastName, schema.Author.ID)

/*
Resolve returns the id of the author named (firstName, lastName), creating the
row when no exact, case-sensitive match exists.

Parameters:
  - context: context.Context
  - db: A pool or an open transaction
  - firstName, lastName: The exact name pair

Returns:
  - int: The author id
  - error: Storage failures
*/
func Resolve(context context.Context, db postgres.Querier, firstName, lastName string) (int, error) {
	var id int
	err := db.QueryRow(context, resolveQuery, firstName, lastName).Scan(&id)

	// A concurrent insert committed after our snapshot: the next statement sees it.
	if errors.Is(err, pgx.ErrNoRows) {
		err = db.QueryRow(context, resolveQuery, firstName, lastName).Scan(&id)
	}
	if err != nil {
		return 0, dberr.Wrap(err, "resolve_author")
	}
	return id, nil
}
