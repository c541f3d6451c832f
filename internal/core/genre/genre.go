// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "github.com/taibuivan/shelfwise/internal/platform/apperr"

// Genre is a category books are linked to through bookgenre rows.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const FieldName = "name"

var (
	ErrNotFound = apperr.NotFound("Genre")

	// ErrHasBooks blocks deleting a genre that books are still linked to.
	ErrHasBooks = apperr.RelatedRecords("Genre cannot be deleted because related books exist")
)
