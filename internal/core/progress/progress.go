// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package progress tracks each user's reading state per book and derives
// recommendations from what they have finished.
package progress

import (
	"math"

	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/pkg/date"
)

// Status is the reading state of one book for one user.
type Status string

const (
	StatusRead    Status = "read"
	StatusUnread  Status = "unread"
	StatusReading Status = "reading"
)

// Statuses lists every accepted [Status].
var Statuses = []string{string(StatusRead), string(StatusUnread), string(StatusReading)}

func (s Status) Valid() bool {
	switch s {
	case StatusRead, StatusUnread, StatusReading:
		return true
	}
	return false
}

// Entry is a booksbyuser row with the book title attached.
type Entry struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	BookID      int        `json:"book_id"`
	Title       string     `json:"title"`
	Status      Status     `json:"status"`
	CurrentPage int        `json:"current_page"`
	StartDate   *date.Date `json:"start_date"`
	EndDate     *date.Date `json:"end_date"`
}

// ReadingBook is an [Entry] joined with enough of the book to show progress.
type ReadingBook struct {
	Entry
	ISBN       string   `json:"isbn"`
	PageCount  int      `json:"page_count"`
	ImageID    *int     `json:"image_id"`
	AuthorName string   `json:"author_name"`
	Genres     []string `json:"genres"`
	Percentage float64  `json:"percentage"`
}

// Recommendation is a book the user has not finished.
type Recommendation struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	PageCount     int        `json:"page_count"`
	Language      *string    `json:"language"`
	DatePublished *date.Date `json:"date_published"`
	Description   *string    `json:"description"`
	AuthorID      int        `json:"author_id"`
	AuthorName    string     `json:"author_name"`
	Genres        []string   `json:"genres"`
}

// FavoriteAuthor is the author a user has finished the most books by.
// Found is false when the user has not finished any book.
type FavoriteAuthor struct {
	Found     bool           `json:"found"`
	Author    *author.Author `json:"author,omitempty"`
	ReadCount int            `json:"read_count"`
}

// FavoriteGenre is the genre of most of the books a user has finished.
type FavoriteGenre struct {
	Found     bool         `json:"found"`
	Genre     *genre.Genre `json:"genre,omitempty"`
	ReadCount int          `json:"read_count"`
}

// Total is a per-user count.
type Total struct {
	UserID int `json:"user_id"`
	Total  int `json:"total"`
}

// Percentage reports currentPage as a share of pageCount, rounded to two
// decimals. A book without a page count is at 0.
func Percentage(currentPage, pageCount int) float64 {
	if pageCount <= 0 {
		return 0
	}
	return math.Round(float64(currentPage)/float64(pageCount)*10000) / 100
}

// CreateInput adds a book to a user's collection by natural keys.
type CreateInput struct {
	Username    string
	Title       string
	Status      Status
	CurrentPage int
	StartDate   *date.Date
	EndDate     *date.Date
}

// UpdateInput replaces the reading state of an entry.
type UpdateInput struct {
	Status      Status
	CurrentPage int
	StartDate   *date.Date
	EndDate     *date.Date
}

const (
	FieldUsername    = "username"
	FieldTitle       = "title"
	FieldStatus      = "status"
	FieldCurrentPage = "current_page"
	FieldEndDate     = "end_date"
)

var (
	ErrNotFound = apperr.NotFound("Book by user")
)
