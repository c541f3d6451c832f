// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// Postgres SQLSTATE codes classified by [Wrap].
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// An error that is already an [apperr.AppError] passes through untouched so
// repositories can return domain errors from inside a transaction.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			ae := apperr.Conflict(conflictMessage(pgErr.ConstraintName))
			ae.Cause = err
			return ae
		case foreignKeyViolation:
			ae := apperr.RelatedRecords("Operation violates a relation between records")
			ae.Cause = err
			return ae
		case checkViolation:
			ae := apperr.ValidationError("Value is outside the allowed range")
			ae.Cause = err
			return ae
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "book_isbn_key":
		return "A book with this ISBN already exists"
	case "user_username_key":
		return "Username is already taken"
	case "bookshelf_name_key":
		return "A bookshelf with this name already exists"
	case "booksbyuser_user_id_book_id_key":
		return "Book is already in the user's collection"
	case "author_name_key":
		return "An author with this name already exists"
	case "genre_name_key":
		return "A genre with this name already exists"
	case "bookgenre_pkey":
		return "Book is already linked to this genre"
	case "bookshelf_books_pkey":
		return "Book is already on this bookshelf"
	default:
		return "Resource already exists"
	}
}
