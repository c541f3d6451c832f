// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/shelfwise/internal/platform/redis"
)

/*
TestNewClient connects, pings and reports a server that went away.
*/
func TestNewClient(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server, err := miniredis.Run()
	require.NoError(t, err)

	client, err := redisstore.NewClient(ctx, "redis://"+server.Addr()+"/0", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, redisstore.Ping(ctx, client))

	server.Close()
	assert.Error(t, redisstore.Ping(ctx, client))
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := redisstore.NewClient(context.Background(), "http://nope", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
