// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "github.com/taibuivan/shelfwise/internal/platform/apperr"

// Author is the writer a book is attributed to, identified by its name pair.
type Author struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName renders the author as "First Last".
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Global field names for validation
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)

var (
	// ErrNotFound is returned when no author matches the lookup.
	ErrNotFound = apperr.NotFound("Author")

	// ErrHasBooks blocks deleting an author that books still reference.
	ErrHasBooks = apperr.RelatedRecords("Author cannot be deleted because related books exist")
)
