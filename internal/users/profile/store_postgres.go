// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
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

// %s is the WHERE clause. A profile not yet claimed by a user has no username.
var selectProfiles = fmt.Sprintf(`
	SELECT p.%s, COALESCE(u.%s, ''), p.%s, p.%s
	FROM %s p
	LEFT JOIN %s u ON u.%s = p.%s
	%%s
	ORDER BY p.%s`,
	schema.Profile.ID, schema.User.Username, schema.Profile.Bio, schema.Profile.Picture,
	schema.Profile.Table,
	schema.User.Table, schema.User.ProfileID, schema.Profile.ID,
	schema.Profile.ID,
)

func (repository *PostgresRepository) ListProfiles(context context.Context) ([]*Profile, error) {
	return repository.queryProfiles(context, fmt.Sprintf(selectProfiles, ""))
}

func (repository *PostgresRepository) GetProfile(context context.Context, id int) (*Profile, error) {
	return repository.getOne(context, "WHERE p."+schema.Profile.ID+" = $1", id)
}

func (repository *PostgresRepository) GetByUsername(context context.Context, username string) (*Profile, error) {
	return repository.getOne(context, "WHERE u."+schema.User.Username+" = $1", username)
}

func (repository *PostgresRepository) CreateProfile(context context.Context, profile *Profile) error {
	id, err := Insert(context, repository.db, profile.Bio, profile.Picture)
	if err != nil {
		return err
	}
	profile.ID = id
	return nil
}

// Insert stores a new profile row through db, which may be an open transaction.
func Insert(context context.Context, db postgres.Querier, bio *string, picture []byte) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.Profile.Table, schema.Profile.Bio, schema.Profile.Picture, schema.Profile.ID)

	var id int
	err := db.QueryRow(context, query, bio, picture).Scan(&id)
	return id, dberr.Wrap(err, "create_profile")
}

// UpdateBio replaces the bio of a profile through db when bio is non-nil.
func UpdateBio(context context.Context, db postgres.Querier, id int, bio *string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = COALESCE($2, %s) WHERE %s = $1`,
		schema.Profile.Table, schema.Profile.Bio, schema.Profile.Bio, schema.Profile.ID)

	_, err := db.Exec(context, query, id, bio)
	return dberr.Wrap(err, "update_profile_bio")
}

func (repository *PostgresRepository) UpdateProfile(context context.Context, id int, bio *string, picture []byte) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s)
		WHERE %s = $1`,
		schema.Profile.Table,
		schema.Profile.Bio, schema.Profile.Bio,
		schema.Profile.Picture, schema.Profile.Picture,
		schema.Profile.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, bio, picture)
	if err != nil {
		return dberr.Wrap(err, "update_profile")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteProfile(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Profile.Table, schema.Profile.ID), id)
	if err != nil {
		err = dberr.Wrap(err, "delete_profile")
		if apperr.IsCode(err, apperr.CodeRelatedRecords) {
			return ErrInUse
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) getOne(context context.Context, where string, arg any) (*Profile, error) {
	profiles, err := repository.queryProfiles(context, fmt.Sprintf(selectProfiles, where), arg)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return profiles[0], nil
}

func (repository *PostgresRepository) queryProfiles(context context.Context, query string, args ...any) ([]*Profile, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profiles")
	}
	defer rows.Close()

	profiles := []*Profile{}
	for rows.Next() {
		p := &Profile{}
		if err := rows.Scan(&p.ID, &p.Username, &p.Bio, &p.Picture); err != nil {
			return nil, dberr.Wrap(err, "scan_profile")
		}
		profiles = append(profiles, p)
	}
	return profiles, dberr.Wrap(rows.Err(), "list_profiles")
}

var _ Repository = (*PostgresRepository)(nil)
