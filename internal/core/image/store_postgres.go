// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectImages = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.Image.Columns(), ", "), schema.Image.Table)

func (repository *PostgresRepository) ListImages(context context.Context) ([]*Image, error) {
	rows, err := repository.db.Query(context, selectImages+" ORDER BY "+schema.Image.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_images")
	}
	defer rows.Close()

	images := []*Image{}
	for rows.Next() {
		i := &Image{}
		if err := rows.Scan(&i.ID, &i.Front, &i.Side, &i.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_image")
		}
		images = append(images, i)
	}
	return images, dberr.Wrap(rows.Err(), "list_images")
}

func (repository *PostgresRepository) GetImage(context context.Context, id int) (*Image, error) {
	i := &Image{}
	err := repository.db.QueryRow(context, selectImages+fmt.Sprintf(" WHERE %s = $1", schema.Image.ID), id).
		Scan(&i.ID, &i.Front, &i.Side, &i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_image")
	}
	return i, nil
}

func (repository *PostgresRepository) CreateImage(context context.Context, i *Image) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.Image.Table, schema.Image.Front, schema.Image.Side, schema.Image.ID, schema.Image.CreatedAt)

	var side []byte
	if len(i.Side) > 0 {
		side = i.Side
	}
	err := repository.db.QueryRow(context, query, i.Front, side).Scan(&i.ID, &i.CreatedAt)
	return dberr.Wrap(err, "create_image")
}

func (repository *PostgresRepository) DeleteImage(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Image.Table, schema.Image.ID), id)
	if err != nil {
		return dberr.Wrap(err, "delete_image")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
