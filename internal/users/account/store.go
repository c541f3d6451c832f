// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"time"

	"github.com/taibuivan/shelfwise/internal/users/session"
)

// Repository defines the persistence contract for user accounts.
type Repository interface {
	ListUsers(context context.Context) ([]*User, error)

	// ListProfiled returns every user joined with its profile.
	ListProfiled(context context.Context) ([]*ProfiledUser, error)

	GetUser(context context.Context, id int) (*ProfiledUser, error)

	// GetByUsername includes the password hash for sign-in.
	GetByUsername(context context.Context, username string) (*ProfiledUser, error)

	// UsernameTaken reports whether a user other than excludeID holds username.
	UsernameTaken(context context.Context, username string, excludeID int) (bool, error)

	/*
		CreateUser stores a new profile with bio and then the user pointing at
		it, in one transaction. It fills user.ID and user.ProfileID.
	*/
	CreateUser(context context.Context, user *User, bio *string) error

	// UpdateUser rewrites the account row and, when bio is non-nil, the profile bio.
	UpdateUser(context context.Context, user *User, bio *string) error

	/*
		DeleteUser removes, in one transaction, the user's bookshelves with their
		bookshelf_books rows, the user's booksbyuser rows, the user and its profile.
	*/
	DeleteUser(context context.Context, id int) error
}

// SessionStore keeps signed-in users between requests.
type SessionStore interface {
	Create(context context.Context, user session.User) (*session.Session, error)
	Get(context context.Context, id string) (*session.Session, error)
	Refresh(context context.Context, id string) error
	Replace(context context.Context, id string, user session.User) error
	Delete(context context.Context, id string) error
	DeleteForUser(context context.Context, userID int) error
	TTL() time.Duration
}

// TokenIssuer signs the token that points a client at its session.
type TokenIssuer interface {
	GenerateSessionToken(sessionID string, userID int, username string, timeToLive time.Duration) (string, error)
}
