// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/platform/database/schema"
	"github.com/taibuivan/shelfwise/internal/platform/dberr"
	"github.com/taibuivan/shelfwise/pkg/date"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const genreNames = `COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.genre_id IS NOT NULL), '{}')`

// %s is the WHERE clause.
const selectEntries = `
	SELECT u.id, u.user_id, u.book_id, b.title, u.status, u.current_page, u.start_date, u.end_date
	FROM booksbyuser u
	JOIN book b ON b.book_id = u.book_id
	%s
	ORDER BY u.id`

const selectReading = `
	SELECT u.id, u.user_id, u.book_id, b.title, u.status, u.current_page, u.start_date, u.end_date,
	       b.isbn, b.page_count, b.image_id, a.first_name, a.last_name, ` + genreNames + `
	FROM booksbyuser u
	JOIN book b ON b.book_id = u.book_id
	JOIN author a ON a.author_id = b.author_id
	LEFT JOIN bookgenre bg ON bg.book_id = b.book_id
	LEFT JOIN genre g ON g.genre_id = bg.genre_id
	%s
	GROUP BY u.id, b.book_id, a.author_id
	ORDER BY b.title, u.id`

// $1 is the user; %s narrows the candidate books with $2.
const selectUnread = `
	SELECT b.book_id, b.title, b.isbn, b.page_count, b.language, b.date_published, b.description,
	       a.author_id, a.first_name, a.last_name, ` + genreNames + `
	FROM book b
	JOIN author a ON a.author_id = b.author_id
	LEFT JOIN bookgenre bg ON bg.book_id = b.book_id
	LEFT JOIN genre g ON g.genre_id = bg.genre_id
	LEFT JOIN booksbyuser u ON u.book_id = b.book_id AND u.user_id = $1
	WHERE %s AND (u.status IS NULL OR u.status <> 'read')
	GROUP BY b.book_id, a.author_id
	ORDER BY b.title, b.book_id`

func (repository *PostgresRepository) ListEntries(context context.Context) ([]*Entry, error) {
	return repository.queryEntries(context, fmt.Sprintf(selectEntries, ""))
}

func (repository *PostgresRepository) GetEntry(context context.Context, id int) (*Entry, error) {
	entries, err := repository.queryEntries(context, fmt.Sprintf(selectEntries, "WHERE u.id = $1"), id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries[0], nil
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID int) ([]*Entry, error) {
	return repository.queryEntries(context, fmt.Sprintf(selectEntries, "WHERE u.user_id = $1"), userID)
}

func (repository *PostgresRepository) GetUserBook(context context.Context, userID, bookID int) (*ReadingBook, error) {
	books, err := repository.queryReading(context,
		fmt.Sprintf(selectReading, "WHERE u.user_id = $1 AND u.book_id = $2"), userID, bookID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books[0], nil
}

func (repository *PostgresRepository) ListReading(context context.Context, userID int) ([]*ReadingBook, error) {
	return repository.queryReading(context,
		fmt.Sprintf(selectReading, "WHERE u.user_id = $1 AND u.status = $2"), userID, string(StatusReading))
}

func (repository *PostgresRepository) CountBooks(context context.Context, userID int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.BooksByUser.Table, schema.BooksByUser.UserID)
	return repository.count(context, query, userID)
}

func (repository *PostgresRepository) CountRead(context context.Context, userID int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1 AND %s = $2`,
		schema.BooksByUser.Table, schema.BooksByUser.UserID, schema.BooksByUser.Status)
	return repository.count(context, query, userID, string(StatusRead))
}

func (repository *PostgresRepository) MostReadAuthor(context context.Context, userID int) (*author.Author, int, error) {
	query := `
		SELECT a.author_id, a.first_name, a.last_name, count(*) AS read_count
		FROM booksbyuser u
		JOIN book b ON b.book_id = u.book_id
		JOIN author a ON a.author_id = b.author_id
		WHERE u.user_id = $1 AND u.status = $2
		GROUP BY a.author_id
		ORDER BY read_count DESC, a.author_id ASC
		LIMIT 1`

	var (
		favorite author.Author
		count    int
	)
	err := repository.db.QueryRow(context, query, userID, string(StatusRead)).
		Scan(&favorite.ID, &favorite.FirstName, &favorite.LastName, &count)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, dberr.Wrap(err, "most_read_author")
	}
	return &favorite, count, nil
}

func (repository *PostgresRepository) MostReadGenre(context context.Context, userID int) (*genre.Genre, int, error) {
	query := `
		SELECT g.genre_id, g.name, count(*) AS read_count
		FROM booksbyuser u
		JOIN bookgenre bg ON bg.book_id = u.book_id
		JOIN genre g ON g.genre_id = bg.genre_id
		WHERE u.user_id = $1 AND u.status = $2
		GROUP BY g.genre_id
		ORDER BY read_count DESC, g.genre_id ASC
		LIMIT 1`

	var (
		favorite genre.Genre
		count    int
	)
	err := repository.db.QueryRow(context, query, userID, string(StatusRead)).Scan(&favorite.ID, &favorite.Name, &count)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, dberr.Wrap(err, "most_read_genre")
	}
	return &favorite, count, nil
}

func (repository *PostgresRepository) UnreadByAuthor(context context.Context, userID, authorID int) ([]*Recommendation, error) {
	return repository.queryUnread(context, fmt.Sprintf(selectUnread, "b.author_id = $2"), userID, authorID)
}

func (repository *PostgresRepository) UnreadByGenre(context context.Context, userID, genreID int) ([]*Recommendation, error) {
	where := `EXISTS (SELECT 1 FROM bookgenre f WHERE f.book_id = b.book_id AND f.genre_id = $2)`
	return repository.queryUnread(context, fmt.Sprintf(selectUnread, where), userID, genreID)
}

func (repository *PostgresRepository) FindUserID(context context.Context, username string) (int, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.User.ID, schema.User.Table, schema.User.Username)
	return repository.lookup(context, query, username)
}

// FindBookID picks the lowest id when several books share a title.
func (repository *PostgresRepository) FindBookID(context context.Context, title string) (int, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s LIMIT 1`,
		schema.Book.ID, schema.Book.Table, schema.Book.Title, schema.Book.ID)
	return repository.lookup(context, query, title)
}

func (repository *PostgresRepository) EntryExists(context context.Context, userID, bookID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.BooksByUser.Table, schema.BooksByUser.UserID, schema.BooksByUser.BookID)

	var found bool
	if err := repository.db.QueryRow(context, query, userID, bookID).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "probe_book_by_user")
	}
	return found, nil
}

func (repository *PostgresRepository) CreateEntry(context context.Context, entry *Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`,
		schema.BooksByUser.Table, schema.BooksByUser.UserID, schema.BooksByUser.BookID, schema.BooksByUser.Status,
		schema.BooksByUser.CurrentPage, schema.BooksByUser.StartDate, schema.BooksByUser.EndDate,
		schema.BooksByUser.ID,
	)

	err := repository.db.QueryRow(context, query,
		entry.UserID, entry.BookID, string(entry.Status), entry.CurrentPage,
		date.Arg(entry.StartDate), date.Arg(entry.EndDate),
	).Scan(&entry.ID)
	return dberr.Wrap(err, "create_book_by_user")
}

func (repository *PostgresRepository) UpdateEntry(context context.Context, id int, input UpdateInput) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.BooksByUser.Table, schema.BooksByUser.Status, schema.BooksByUser.CurrentPage,
		schema.BooksByUser.StartDate, schema.BooksByUser.EndDate, schema.BooksByUser.ID)

	cmd, err := repository.db.Exec(context, query, id,
		string(input.Status), input.CurrentPage, date.Arg(input.StartDate), date.Arg(input.EndDate))
	if err != nil {
		return dberr.Wrap(err, "update_book_by_user")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BooksByUser.Table, schema.BooksByUser.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book_by_user")
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// # Scanning

func (repository *PostgresRepository) queryEntries(context context.Context, query string, args ...any) ([]*Entry, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_by_user")
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		entry := &Entry{}
		var (
			status     string
			start, end *time.Time
		)
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.BookID, &entry.Title,
			&status, &entry.CurrentPage, &start, &end)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book_by_user")
		}
		entry.Status = Status(status)
		entry.StartDate, entry.EndDate = date.FromTime(start), date.FromTime(end)
		entries = append(entries, entry)
	}
	return entries, dberr.Wrap(rows.Err(), "list_books_by_user")
}

func (repository *PostgresRepository) queryReading(context context.Context, query string, args ...any) ([]*ReadingBook, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reading")
	}
	defer rows.Close()

	books := []*ReadingBook{}
	for rows.Next() {
		book := &ReadingBook{}
		var (
			status     string
			start, end *time.Time
			writer     author.Author
		)
		err := rows.Scan(&book.ID, &book.UserID, &book.BookID, &book.Title,
			&status, &book.CurrentPage, &start, &end,
			&book.ISBN, &book.PageCount, &book.ImageID, &writer.FirstName, &writer.LastName, &book.Genres)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_reading")
		}
		book.Status = Status(status)
		book.StartDate, book.EndDate = date.FromTime(start), date.FromTime(end)
		book.AuthorName = writer.FullName()
		books = append(books, book)
	}
	return books, dberr.Wrap(rows.Err(), "list_reading")
}

func (repository *PostgresRepository) queryUnread(context context.Context, query string, args ...any) ([]*Recommendation, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_unread")
	}
	defer rows.Close()

	books := []*Recommendation{}
	for rows.Next() {
		book := &Recommendation{}
		var (
			published *time.Time
			writer    author.Author
		)
		err := rows.Scan(&book.ID, &book.Title, &book.ISBN, &book.PageCount, &book.Language, &published,
			&book.Description, &book.AuthorID, &writer.FirstName, &writer.LastName, &book.Genres)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_unread")
		}
		book.DatePublished = date.FromTime(published)
		book.AuthorName = writer.FullName()
		books = append(books, book)
	}
	return books, dberr.Wrap(rows.Err(), "list_unread")
}

func (repository *PostgresRepository) count(context context.Context, query string, args ...any) (int, error) {
	var total int
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_books_by_user")
	}
	return total, nil
}

func (repository *PostgresRepository) lookup(context context.Context, query string, arg any) (int, bool, error) {
	var id int
	err := repository.db.QueryRow(context, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "lookup")
	}
	return id, true, nil
}

var _ Repository = (*PostgresRepository)(nil)
