// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package shelfbook places books on bookshelves.
package shelfbook

import "github.com/taibuivan/shelfwise/internal/platform/apperr"

// Placement is one book on one bookshelf. Title is filled on reads.
type Placement struct {
	BookshelfID int    `json:"bookshelf_id"`
	BookID      int    `json:"book_id"`
	Title       string `json:"title,omitempty"`
}

// key drops the read-only title so placements compare by identity.
func (p Placement) key() Placement {
	return Placement{BookshelfID: p.BookshelfID, BookID: p.BookID}
}

var (
	ErrNotFound = apperr.NotFound("Bookshelf book")

	ErrBookNotFound  = apperr.NotFound("Book")
	ErrShelfNotFound = apperr.NotFound("Bookshelf")
)
