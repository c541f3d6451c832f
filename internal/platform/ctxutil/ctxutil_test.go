// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/platform/ctxutil"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
)

/*
TestContext_Values stores each request value and reads it back.
*/
func TestContext_Values(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	claims := &sec.SessionClaims{UserID: 7, Username: "reader"}

	ctx = ctxutil.WithRequestID(ctx, "req-1")
	ctx = ctxutil.WithLogger(ctx, logger)
	ctx = ctxutil.WithSession(ctx, claims)

	assert.Equal(t, "req-1", ctxutil.GetRequestID(ctx))
	assert.Same(t, logger, ctxutil.GetLogger(ctx))

	got := ctxutil.GetSession(ctx)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "reader", got.Username)
}

/*
TestContext_Defaults covers an anonymous request outside the middleware chain.
*/
func TestContext_Defaults(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Nil(t, ctxutil.GetSession(ctx))
}
