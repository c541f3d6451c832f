// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf

import (
	"time"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// View controls who may see a bookshelf.
type View string

const (
	ViewPublic  View = "public"
	ViewPrivate View = "private"
)

// Views lists every accepted [View].
var Views = []string{string(ViewPublic), string(ViewPrivate)}

// Bookshelf is a named collection of books owned by one user.
type Bookshelf struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	View      View      `json:"view"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldUsername = "username"
	FieldName     = "name"
	FieldView     = "view"
)

var (
	ErrNotFound = apperr.NotFound("Bookshelf")

	ErrDuplicateName = apperr.Conflict("A bookshelf with this name already exists")
)
