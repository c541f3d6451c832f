// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf

import (
	"context"
	"errors"
	"fmt"

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

// %s is the WHERE clause.
var selectShelves = fmt.Sprintf(`
	SELECT s.%s, s.%s, u.%s, s.%s, s.%s, s.%s
	FROM %s s
	JOIN %s u ON u.%s = s.%s
	%%s
	ORDER BY s.%s`,
	schema.Bookshelf.ID, schema.Bookshelf.UserID, schema.User.Username, schema.Bookshelf.Name,
	schema.Bookshelf.View, schema.Bookshelf.CreatedAt,
	schema.Bookshelf.Table,
	schema.User.Table, schema.User.ID, schema.Bookshelf.UserID,
	schema.Bookshelf.ID,
)

func (repository *PostgresRepository) ListShelves(context context.Context) ([]*Bookshelf, error) {
	return repository.queryShelves(context, fmt.Sprintf(selectShelves, ""))
}

func (repository *PostgresRepository) GetShelf(context context.Context, id int) (*Bookshelf, error) {
	shelves, err := repository.queryShelves(context, fmt.Sprintf(selectShelves, "WHERE s."+schema.Bookshelf.ID+" = $1"), id)
	if err != nil {
		return nil, err
	}
	if len(shelves) == 0 {
		return nil, ErrNotFound
	}
	return shelves[0], nil
}

func (repository *PostgresRepository) ListByUsername(context context.Context, username string) ([]*Bookshelf, error) {
	return repository.queryShelves(context, fmt.Sprintf(selectShelves, "WHERE u."+schema.User.Username+" = $1"), username)
}

func (repository *PostgresRepository) ListByView(context context.Context, view View) ([]*Bookshelf, error) {
	return repository.queryShelves(context, fmt.Sprintf(selectShelves, "WHERE s."+schema.Bookshelf.View+" = $1"), string(view))
}

func (repository *PostgresRepository) ListByName(context context.Context, name string) ([]*Bookshelf, error) {
	return repository.queryShelves(context, fmt.Sprintf(selectShelves, "WHERE s."+schema.Bookshelf.Name+" = $1"), name)
}

func (repository *PostgresRepository) FindUserID(context context.Context, username string) (int, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.User.ID, schema.User.Table, schema.User.Username)

	var id int
	err := repository.db.QueryRow(context, query, username).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "find_user_id")
	}
	return id, true, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`,
		schema.Bookshelf.Table, schema.Bookshelf.Name, schema.Bookshelf.ID)

	var taken bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_bookshelf_name")
	}
	return taken, nil
}

func (repository *PostgresRepository) CreateShelf(context context.Context, shelf *Bookshelf) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.Bookshelf.Table, schema.Bookshelf.UserID, schema.Bookshelf.Name, schema.Bookshelf.View,
		schema.Bookshelf.ID, schema.Bookshelf.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, shelf.UserID, shelf.Name, string(shelf.View)).
		Scan(&shelf.ID, &shelf.CreatedAt)
	return dberr.Wrap(err, "create_bookshelf")
}

func (repository *PostgresRepository) UpdateShelf(context context.Context, id int, name string, view View) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.Bookshelf.Table, schema.Bookshelf.Name, schema.Bookshelf.View, schema.Bookshelf.ID)

	cmd, err := repository.db.Exec(context, query, id, name, string(view))
	if err != nil {
		return dberr.Wrap(err, "update_bookshelf")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteShelf(context context.Context, id int) error {
	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		return DeleteShelves(context, transaction, schema.Bookshelf.ID, id)
	})
	return dberr.Wrap(err, "delete_bookshelf")
}

/*
DeleteShelves removes every shelf where column = value, together with its
bookshelf_books rows. It reports not found when no shelf matched and column is
the shelf id.

Parameters:
  - db: An open transaction
  - column: schema.Bookshelf.ID for one shelf, schema.Bookshelf.UserID for a user's shelves
*/
func DeleteShelves(context context.Context, db postgres.Querier, column string, value int) error {
	clearBooks := fmt.Sprintf(`
		DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = $1)`,
		schema.BookshelfBooks.Table, schema.BookshelfBooks.BookshelfID,
		schema.Bookshelf.ID, schema.Bookshelf.Table, column,
	)
	if _, err := db.Exec(context, clearBooks, value); err != nil {
		return dberr.Wrap(err, "delete_bookshelf_books")
	}

	cmd, err := db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Bookshelf.Table, column), value)
	if err != nil {
		return dberr.Wrap(err, "delete_bookshelf")
	}
	if cmd.RowsAffected() == 0 && column == schema.Bookshelf.ID {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) queryShelves(context context.Context, query string, args ...any) ([]*Bookshelf, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bookshelves")
	}
	defer rows.Close()

	shelves := []*Bookshelf{}
	for rows.Next() {
		shelf := &Bookshelf{}
		var view string
		if err := rows.Scan(&shelf.ID, &shelf.UserID, &shelf.Username, &shelf.Name, &view, &shelf.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_bookshelf")
		}
		shelf.View = View(view)
		shelves = append(shelves, shelf)
	}
	return shelves, dberr.Wrap(rows.Err(), "list_bookshelves")
}

var _ Repository = (*PostgresRepository)(nil)
