// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/internal/platform/postgres"
	"github.com/taibuivan/shelfwise/pkg/date"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectBooks joins the author and aggregates genre names; %s is the WHERE clause.
const selectBooks = `
	SELECT b.book_id, b.title, b.isbn, b.page_count, b.language, b.date_published,
	       b.description, b.image_id, a.author_id, a.first_name, a.last_name,
	       COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.genre_id IS NOT NULL), '{}') AS genres
	FROM book b
	JOIN author a ON a.author_id = b.author_id
	LEFT JOIN bookgenre bg ON bg.book_id = b.book_id
	LEFT JOIN genre g ON g.genre_id = bg.genre_id
	%s
	GROUP BY b.book_id, a.author_id
	ORDER BY b.title, b.book_id`

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	return repository.queryBooks(context, fmt.Sprintf(selectBooks, ""))
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	books, err := repository.queryBooks(context, fmt.Sprintf(selectBooks, "WHERE b.book_id = $1"), id)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books[0], nil
}

func (repository *PostgresRepository) FindByTitle(context context.Context, title string) ([]*Book, error) {
	return repository.queryBooks(context, fmt.Sprintf(selectBooks, "WHERE b.title = $1"), title)
}

func (repository *PostgresRepository) Search(context context.Context, keyword string) ([]*Book, error) {
	where := `
	WHERE b.title ILIKE $1
	   OR a.first_name ILIKE $1
	   OR a.last_name ILIKE $1
	   OR EXISTS (
	       SELECT 1 FROM bookgenre sbg
	       JOIN genre sg ON sg.genre_id = sbg.genre_id
	       WHERE sbg.book_id = b.book_id AND sg.name ILIKE $1
	   )`
	return repository.queryBooks(context, fmt.Sprintf(selectBooks, where), "%"+escapeLike(keyword)+"%")
}

func (repository *PostgresRepository) ISBNTaken(context context.Context, isbn string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`,
		schema.Book.Table, schema.Book.ISBN, schema.Book.ID)

	var taken bool
	if err := repository.db.QueryRow(context, query, isbn, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_isbn")
	}
	return taken, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, input Input) (int, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`,
		schema.Book.Table, schema.Book.Title, schema.Book.ISBN, schema.Book.PageCount, schema.Book.Language,
		schema.Book.DatePublished, schema.Book.Description, schema.Book.AuthorID, schema.Book.ImageID,
		schema.Book.ID,
	)

	var id int
	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		authorID, err := author.Resolve(context, transaction, input.AuthorFirstName, input.AuthorLastName)
		if err != nil {
			return err
		}

		err = transaction.QueryRow(context, insert,
			input.Title, input.ISBN, input.PageCount, input.Language,
			date.Arg(input.DatePublished), input.Description, authorID, input.ImageID,
		).Scan(&id)
		if err != nil {
			return dberr.Wrap(err, "create_book")
		}

		return linkGenres(context, transaction, id, input.Genres)
	})
	if err != nil {
		return 0, dberr.Wrap(err, "create_book")
	}
	return id, nil
}

func (repository *PostgresRepository) UpdateBook(context context.Context, id int, input Input) error {
	update := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1`,
		schema.Book.Table, schema.Book.Title, schema.Book.ISBN, schema.Book.PageCount, schema.Book.Language,
		schema.Book.DatePublished, schema.Book.Description, schema.Book.AuthorID, schema.Book.ImageID,
		schema.Book.ID,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		authorID, err := author.Resolve(context, transaction, input.AuthorFirstName, input.AuthorLastName)
		if err != nil {
			return err
		}

		cmd, err := transaction.Exec(context, update, id,
			input.Title, input.ISBN, input.PageCount, input.Language,
			date.Arg(input.DatePublished), input.Description, authorID, input.ImageID,
		)
		if err != nil {
			return dberr.Wrap(err, "update_book")
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}

		return linkGenres(context, transaction, id, input.Genres)
	})
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int) error {
	// Dependents first, parent last.
	dependents := []struct{ table, column string }{
		{schema.BookGenre.Table, schema.BookGenre.BookID},
		{schema.BookshelfBooks.Table, schema.BookshelfBooks.BookID},
		{schema.BooksByUser.Table, schema.BooksByUser.BookID},
		{schema.Review.Table, schema.Review.BookID},
	}

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		for _, dependent := range dependents {
			query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, dependent.table, dependent.column)
			if _, err := transaction.Exec(context, query, id); err != nil {
				return dberr.Wrap(err, "delete_book_"+dependent.table)
			}
		}

		cmd, err := transaction.Exec(context,
			fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID), id)
		if err != nil {
			return dberr.Wrap(err, "delete_book")
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	return dberr.Wrap(err, "delete_book")
}

// linkGenres resolves names to ids and replaces the book's bookgenre rows.
func linkGenres(context context.Context, transaction pgx.Tx, bookID int, names []string) error {
	genreIDs, err := genre.ResolveAll(context, transaction, names)
	if err != nil {
		return err
	}
	return postgres.ReplaceJunction(context, transaction,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID, bookID, genreIDs)
}

func (repository *PostgresRepository) queryBooks(context context.Context, query string, args ...any) ([]*Book, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	return books, dberr.Wrap(rows.Err(), "list_books")
}

func scanBook(row pgx.Row) (*Book, error) {
	var (
		b         Book
		published *time.Time
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.ISBN, &b.PageCount, &b.Language, &published,
		&b.Description, &b.ImageID, &b.Author.ID, &b.Author.FirstName, &b.Author.LastName,
		&b.Genres,
	)
	if err != nil {
		return nil, err
	}

	b.DatePublished = date.FromTime(published)
	b.AuthorID = b.Author.ID
	b.AuthorName = b.Author.FullName()
	return &b, nil
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}

var _ Repository = (*PostgresRepository)(nil)

