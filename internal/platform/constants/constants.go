// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed timings, names and keys shared across
// the platform packages. Tunables that differ per deployment live in config.
package constants

import "time"

const (
	AppName    = "shelfwise-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute

	// GlobalRequestTimeout caps a handler and, through statement_timeout, its queries.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on SIGTERM.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 50

	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Sessions

const (
	// AuthIssuer is the iss claim of session tokens.
	AuthIssuer = "shelfwise.app"

	SessionCookieName = "shelfwise_session"
	SessionCookiePath = "/api"

	// RedisPrefixSession keys one session payload: session:<id>.
	RedisPrefixSession = "session:"
	// RedisPrefixUserSessions keys the set of a user's session ids: session:user:<user id>.
	RedisPrefixUserSessions = "session:user:"
)

// # HTTP

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderAuthorization = "Authorization"
)

// Health payload fields.
const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)
