// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"

	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/genre"
)

type Repository interface {
	ListEntries(context context.Context) ([]*Entry, error)
	GetEntry(context context.Context, id int) (*Entry, error)
	ListByUser(context context.Context, userID int) ([]*Entry, error)

	// GetUserBook returns the user's entry for the book, with the book details.
	GetUserBook(context context.Context, userID, bookID int) (*ReadingBook, error)
	ListReading(context context.Context, userID int) ([]*ReadingBook, error)

	CountBooks(context context.Context, userID int) (int, error)
	CountRead(context context.Context, userID int) (int, error)

	// MostReadAuthor returns nil when the user has not finished any book.
	// Equal counts resolve to the smallest author id.
	MostReadAuthor(context context.Context, userID int) (*author.Author, int, error)

	// MostReadGenre returns nil when the user has not finished any book.
	// Equal counts resolve to the smallest genre id.
	MostReadGenre(context context.Context, userID int) (*genre.Genre, int, error)

	// UnreadByAuthor lists the author's books that the user has not marked read.
	UnreadByAuthor(context context.Context, userID, authorID int) ([]*Recommendation, error)

	// UnreadByGenre lists the genre's books that the user has not marked read.
	UnreadByGenre(context context.Context, userID, genreID int) ([]*Recommendation, error)

	FindUserID(context context.Context, username string) (int, bool, error)
	FindBookID(context context.Context, title string) (int, bool, error)
	EntryExists(context context.Context, userID, bookID int) (bool, error)

	CreateEntry(context context.Context, entry *Entry) error
	UpdateEntry(context context.Context, id int, input UpdateInput) error
	DeleteEntry(context context.Context, id int) error
}
