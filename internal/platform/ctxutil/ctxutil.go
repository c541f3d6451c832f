// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil reads and writes the request values declared in [ctxkey].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/shelfwise/internal/platform/ctxkey"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger falls back to [slog.Default] so background work can log too.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithSession marks the request as signed in.
func WithSession(ctx context.Context, claims *sec.SessionClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, claims)
}

// GetSession returns the caller's session claims, or nil for anonymous requests.
func GetSession(ctx context.Context) *sec.SessionClaims {
	claims, _ := ctx.Value(ctxkey.KeySession).(*sec.SessionClaims)
	return claims
}
