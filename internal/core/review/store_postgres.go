// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/pkg/pointer"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// %s is the WHERE clause.
var selectReviews = fmt.Sprintf(`
	SELECT r.%s, r.%s, b.%s, r.%s, r.%s, r.%s
	FROM %s r
	JOIN %s b ON b.%s = r.%s
	%%s
	ORDER BY r.%s DESC, r.%s`,
	schema.Review.ID, schema.Review.BookID, schema.Book.Title, schema.Review.Rating,
	schema.Review.Description, schema.Review.CreatedAt,
	schema.Review.Table,
	schema.Book.Table, schema.Book.ID, schema.Review.BookID,
	schema.Review.CreatedAt, schema.Review.ID,
)

func (repository *PostgresRepository) ListReviews(context context.Context) ([]*Review, error) {
	return repository.queryReviews(context, fmt.Sprintf(selectReviews, ""))
}

func (repository *PostgresRepository) GetReview(context context.Context, id int) (*Review, error) {
	reviews, err := repository.queryReviews(context, fmt.Sprintf(selectReviews, "WHERE r."+schema.Review.ID+" = $1"), id)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNotFound
	}
	return reviews[0], nil
}

func (repository *PostgresRepository) FindByTitle(context context.Context, title string) ([]*Review, error) {
	pattern := "%" + strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(title) + "%"
	return repository.queryReviews(context, fmt.Sprintf(selectReviews, "WHERE b."+schema.Book.Title+" ILIKE $1"), pattern)
}

func (repository *PostgresRepository) FindByRating(context context.Context, rating int) ([]*Review, error) {
	return repository.queryReviews(context, fmt.Sprintf(selectReviews, "WHERE r."+schema.Review.Rating+" = $1"), rating)
}

func (repository *PostgresRepository) ResolveBook(context context.Context, bookID int, title string) (int, bool, error) {
	query := fmt.Sprintf(`SELECT %[1]s FROM %[2]s WHERE %[1]s = $1 ORDER BY %[1]s LIMIT 1`, schema.Book.ID, schema.Book.Table)
	var arg any = bookID
	if bookID <= 0 {
		query = fmt.Sprintf(`SELECT %[1]s FROM %[2]s WHERE %[3]s = $1 ORDER BY %[1]s LIMIT 1`,
			schema.Book.ID, schema.Book.Table, schema.Book.Title)
		arg = title
	}

	var id int
	err := repository.db.QueryRow(context, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "resolve_review_book")
	}
	return id, true, nil
}

func (repository *PostgresRepository) CreateReview(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.Review.Table, schema.Review.BookID, schema.Review.Rating, schema.Review.Description,
		schema.Review.ID, schema.Review.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, review.BookID, review.Rating, review.Description).
		Scan(&review.ID, &review.CreatedAt)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) UpdateReview(context context.Context, review *Review) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		schema.Review.Table, schema.Review.BookID, schema.Review.Rating, schema.Review.Description, schema.Review.ID)

	cmd, err := repository.db.Exec(context, query, review.ID, review.BookID, review.Rating, review.Description)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteReview(context context.Context, id int) error {
	cmd, err := repository.db.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Review.Table, schema.Review.ID), id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) queryReviews(context context.Context, query string, args ...any) ([]*Review, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		r := &Review{}
		var description *string
		if err := rows.Scan(&r.ID, &r.BookID, &r.BookTitle, &r.Rating, &description, &r.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		r.Description = pointer.Val(description)
		reviews = append(reviews, r)
	}
	return reviews, dberr.Wrap(rows.Err(), "list_reviews")
}
