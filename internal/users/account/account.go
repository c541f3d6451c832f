// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages user accounts and sign-in.

# Architecture

  - Entities: User, ProfiledUser (user joined with its profile), SignInResult.
  - Storage: Postgres for accounts; every account owns exactly one profile row.
  - Sessions: Sign-in stores a snapshot of the user in the session store and
    hands the client a signed token pointing at it.
*/
package account

import (
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/users/session"
)

// # Domain Entities

// User is a registered reader.
type User struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
	ProfileID    int     `json:"profile_id"`
	ReadingGoal  int     `json:"reading_goal"`
}

// ProfiledUser is a user together with the bio and picture of its profile.
type ProfiledUser struct {
	User

	Bio *string `json:"bio"`

	// Picture is a data URL, nil when no picture was uploaded.
	Picture *string `json:"picture"`
}

// Snapshot is the public view of the user stored in a session.
func (user *ProfiledUser) Snapshot() session.User {
	return session.User{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		ProfileID:   user.ProfileID,
		Bio:         user.Bio,
		Picture:     user.Picture,
		ReadingGoal: user.ReadingGoal,
	}
}

// SignInResult reports the outcome of a sign-in attempt. Bad credentials are
// a result, not an error.
type SignInResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    *session.User `json:"user,omitempty"`
}

// Input carries the writable account fields. An empty Password on update keeps
// the current one.
type Input struct {
	FirstName   string
	LastName    string
	Username    string
	Email       string
	Password    string
	PhoneNumber *string
	Address     *string
	Bio         *string
	ReadingGoal int
}

// # Field Identifiers

const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldReadingGoal = "reading_goal"
)

var ErrNotFound = apperr.NotFound("User")

const (
	msgSignedIn           = "Signed in"
	msgInvalidCredentials = "Invalid username or password"
)
