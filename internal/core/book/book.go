// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/pkg/date"
)

// Book is a catalog entry with its author and genre names resolved.
type Book struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	ISBN          string        `json:"isbn"`
	PageCount     int           `json:"page_count"`
	Language      *string       `json:"language"`
	DatePublished *date.Date    `json:"date_published"`
	Description   *string       `json:"description"`
	ImageID       *int          `json:"image_id"`
	AuthorID      int           `json:"author_id"`
	Author        author.Author `json:"author"`
	AuthorName    string        `json:"author_name"`
	Genres        []string      `json:"genres"`
}

// Input is the full writable state of a book. Author and genres are given
// by name and resolved to rows on write.
type Input struct {
	Title           string
	ISBN            string
	PageCount       int
	Language        *string
	DatePublished   *date.Date
	Description     *string
	ImageID         *int
	AuthorFirstName string
	AuthorLastName  string
	Genres          []string
}

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldISBN      = "isbn"
	FieldPageCount = "page_count"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldGenres    = "genres"
	FieldKeyword   = "keyword"
)

var (
	ErrNotFound = apperr.NotFound("Book")

	ErrDuplicateISBN = apperr.Conflict("A book with this ISBN already exists")
)
