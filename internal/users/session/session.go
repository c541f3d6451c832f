// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session keeps signed-in users in Redis.

Each session is a JSON snapshot of the user's public fields stored under
"session:<id>" with a sliding TTL. A per-user index set lets an account
deletion sign the user out everywhere.
*/
package session

import (
	"time"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// User is the public part of an account carried by a session.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	ProfileID   int     `json:"profile_id"`
	Bio         *string `json:"bio"`
	Picture     *string `json:"picture"`
	ReadingGoal int     `json:"reading_goal"`
}

type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrNotFound = apperr.Unauthorized("Session expired or signed out")
