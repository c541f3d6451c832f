// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey declares the keys under which middleware stores per-request
// values. The key type is unexported, so only [ctxutil] can read them.
package ctxkey

type key uint8

const (
	// KeyRequestID holds the X-Request-ID of the current request.
	KeyRequestID key = iota + 1

	// KeySession holds the verified [sec.SessionClaims] of a signed-in caller.
	KeySession

	// KeyLogger holds the request-scoped *slog.Logger.
	KeyLogger
)
