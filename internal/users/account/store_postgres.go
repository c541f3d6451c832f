// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/core/bookshelf"
	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/internal/platform/postgres"
	"github.com/taibuivan/shelfwise/internal/users/profile"
)

// PostgresRepository implements [Repository] on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var userColumns = []string{
	schema.User.ID, schema.User.FirstName, schema.User.LastName, schema.User.Username,
	schema.User.Email, schema.User.Password, schema.User.PhoneNumber, schema.User.Address,
	schema.User.ProfileID, schema.User.ReadingGoal,
}

// %s is the WHERE clause.
var selectProfiled = fmt.Sprintf(`
	SELECT u.%s, p.%s, p.%s
	FROM %s u
	JOIN %s p ON p.%s = u.%s
	%%s
	ORDER BY u.%s`,
	strings.Join(userColumns, ", u."), schema.Profile.Bio, schema.Profile.Picture,
	schema.User.Table,
	schema.Profile.Table, schema.Profile.ID, schema.User.ProfileID,
	schema.User.ID,
)

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(userColumns, ", "), schema.User.Table, schema.User.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(userFields(user)...); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	return users, dberr.Wrap(rows.Err(), "list_users")
}

func (repository *PostgresRepository) ListProfiled(context context.Context) ([]*ProfiledUser, error) {
	return repository.queryProfiled(context, fmt.Sprintf(selectProfiled, ""))
}

func (repository *PostgresRepository) GetUser(context context.Context, id int) (*ProfiledUser, error) {
	return repository.getOne(context, "WHERE u."+schema.User.ID+" = $1", id)
}

func (repository *PostgresRepository) GetByUsername(context context.Context, username string) (*ProfiledUser, error) {
	return repository.getOne(context, "WHERE u."+schema.User.Username+" = $1", username)
}

func (repository *PostgresRepository) UsernameTaken(context context.Context, username string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`,
		schema.User.Table, schema.User.Username, schema.User.ID)

	var taken bool
	if err := repository.db.QueryRow(context, query, username, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_username")
	}
	return taken, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, user *User, bio *string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`,
		schema.User.Table,
		schema.User.FirstName, schema.User.LastName, schema.User.Username, schema.User.Email,
		schema.User.Password, schema.User.PhoneNumber, schema.User.Address,
		schema.User.ProfileID, schema.User.ReadingGoal,
		schema.User.ID,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		profileID, err := profile.Insert(context, transaction, bio, nil)
		if err != nil {
			return err
		}

		err = transaction.QueryRow(context, query,
			user.FirstName, user.LastName, user.Username, user.Email,
			user.PasswordHash, user.PhoneNumber, user.Address,
			profileID, user.ReadingGoal,
		).Scan(&user.ID)
		if err != nil {
			return err
		}

		user.ProfileID = profileID
		return nil
	})
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, user *User, bio *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1`,
		schema.User.Table,
		schema.User.FirstName, schema.User.LastName, schema.User.Username, schema.User.Email,
		schema.User.Password, schema.User.PhoneNumber, schema.User.Address, schema.User.ReadingGoal,
		schema.User.ID,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		cmd, err := transaction.Exec(context, query, user.ID,
			user.FirstName, user.LastName, user.Username, user.Email,
			user.PasswordHash, user.PhoneNumber, user.Address, user.ReadingGoal,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		return profile.UpdateBio(context, transaction, user.ProfileID, bio)
	})
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id int) error {
	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		var profileID int
		err := transaction.QueryRow(context,
			fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, schema.User.ProfileID, schema.User.Table, schema.User.ID),
			id,
		).Scan(&profileID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := bookshelf.DeleteShelves(context, transaction, schema.Bookshelf.UserID, id); err != nil {
			return err
		}

		statements := []struct {
			query string
			arg   int
		}{
			{fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BooksByUser.Table, schema.BooksByUser.UserID), id},
			{fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.User.Table, schema.User.ID), id},
			{fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Profile.Table, schema.Profile.ID), profileID},
		}
		for _, statement := range statements {
			if _, err := transaction.Exec(context, statement.query, statement.arg); err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, "delete_user")
}

func (repository *PostgresRepository) getOne(context context.Context, where string, arg any) (*ProfiledUser, error) {
	users, err := repository.queryProfiled(context, fmt.Sprintf(selectProfiled, where), arg)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users[0], nil
}

func (repository *PostgresRepository) queryProfiled(context context.Context, query string, args ...any) ([]*ProfiledUser, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profiled_users")
	}
	defer rows.Close()

	users := []*ProfiledUser{}
	for rows.Next() {
		user := &ProfiledUser{}
		var picture []byte
		if err := rows.Scan(append(userFields(&user.User), &user.Bio, &picture)...); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		if len(picture) > 0 {
			url := image.DataURL(picture)
			user.Picture = &url
		}
		users = append(users, user)
	}
	return users, dberr.Wrap(rows.Err(), "list_profiled_users")
}

// userFields lists scan targets in userColumns order.
func userFields(user *User) []any {
	return []any{
		&user.ID, &user.FirstName, &user.LastName, &user.Username,
		&user.Email, &user.PasswordHash, &user.PhoneNumber, &user.Address,
		&user.ProfileID, &user.ReadingGoal,
	}
}

var _ Repository = (*PostgresRepository)(nil)
