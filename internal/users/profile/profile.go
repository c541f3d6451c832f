// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile manages the bio and picture attached one-to-one to a user.

Pictures are stored as binary blobs and travel as data URLs, the same way
book cover images do.
*/
package profile

import (
	"encoding/json"

	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// Profile is the public face of a user account.
type Profile struct {
	ID int

	// Username is empty until a user claims the profile.
	Username string
	Bio      *string
	Picture  []byte
}

type profileJSON struct {
	ID       int     `json:"id"`
	Username string  `json:"username,omitempty"`
	Bio      *string `json:"bio"`
	Picture  *string `json:"picture"`
}

// MarshalJSON renders the picture as a data URL, or null when absent.
func (p Profile) MarshalJSON() ([]byte, error) {
	out := profileJSON{ID: p.ID, Username: p.Username, Bio: p.Bio}
	if len(p.Picture) > 0 {
		picture := image.DataURL(p.Picture)
		out.Picture = &picture
	}
	return json.Marshal(out)
}

// Input carries a partial profile. Nil fields keep their stored value on update.
type Input struct {
	Bio     *string
	Picture *string
}

const (
	FieldBio     = "bio"
	FieldPicture = "picture"
)

var (
	ErrNotFound = apperr.NotFound("Profile")
	ErrInUse    = apperr.RelatedRecords("Profile cannot be deleted because a user still owns it")
)
