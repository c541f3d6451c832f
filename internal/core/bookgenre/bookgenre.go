// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookgenre

import "github.com/taibuivan/shelfwise/internal/platform/apperr"

// Link ties one book to one genre.
type Link struct {
	BookID  int `json:"book_id"`
	GenreID int `json:"genre_id"`
}

const (
	FieldBookID  = "book_id"
	FieldGenreID = "genre_id"
)

var (
	ErrNotFound = apperr.NotFound("Book/genre association")

	ErrBookNotFound  = apperr.NotFound("Book")
	ErrGenreNotFound = apperr.NotFound("Genre")
)
