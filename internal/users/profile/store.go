// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

type Repository interface {
	ListProfiles(context context.Context) ([]*Profile, error)
	GetProfile(context context.Context, id int) (*Profile, error)
	GetByUsername(context context.Context, username string) (*Profile, error)

	CreateProfile(context context.Context, profile *Profile) error

	// UpdateProfile overwrites only the non-nil values.
	UpdateProfile(context context.Context, id int, bio *string, picture []byte) error

	DeleteProfile(context context.Context, id int) error
}
