// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"time"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// Review is a rated opinion of one book.
type Review struct {
	ID          int       `json:"id"`
	BookID      int       `json:"book_id"`
	BookTitle   string    `json:"book_title"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Input identifies the book by id, or by exact title when BookID is zero.
type Input struct {
	BookID      int
	BookTitle   string
	Rating      int
	Description string
}

const (
	MinRating = 1
	MaxRating = 5
)

const (
	FieldBookID      = "book_id"
	FieldRating      = "rating"
	FieldDescription = "description"
	FieldTitle       = "title"
)

var (
	ErrNotFound = apperr.NotFound("Review")

	ErrBookNotFound = apperr.NotFound("Book")
)
