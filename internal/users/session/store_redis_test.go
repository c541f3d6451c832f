// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/platform/middleware"
	"github.com/taibuivan/shelfwise/internal/users/session"
)

var _ middleware.SessionChecker = (*session.RedisStore)(nil)

func newStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return session.NewRedisStore(client, time.Hour), server
}

/*
TestRedisStore_Lifecycle covers create, read, refresh and delete of one session.
*/
func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)

	bio := "Reads on trains"
	created, err := store.Create(ctx, session.User{ID: 7, Username: "jdoe", Email: "j@example.com", Bio: &bio})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, server.Exists("session:"+created.ID))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.User.Username)
	assert.Equal(t, &bio, got.User.Bio)

	server.FastForward(30 * time.Minute)
	require.NoError(t, store.Refresh(ctx, created.ID))
	assert.Equal(t, time.Hour, server.TTL("session:"+created.ID))

	require.NoError(t, store.Delete(ctx, created.ID))
	alive, err := store.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, alive)

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.NoError(t, store.Delete(ctx, created.ID))
}

/*
TestRedisStore_Expiry drops a session once its TTL elapses.
*/
func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)

	created, err := store.Create(ctx, session.User{ID: 1, Username: "jdoe"})
	require.NoError(t, err)

	server.FastForward(2 * time.Hour)

	alive, err := store.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, alive)
	assert.ErrorIs(t, store.Refresh(ctx, created.ID), session.ErrNotFound)
}

/*
TestRedisStore_Replace swaps the snapshot and keeps the TTL.
*/
func TestRedisStore_Replace(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)

	created, err := store.Create(ctx, session.User{ID: 1, Username: "jdoe", ReadingGoal: 10})
	require.NoError(t, err)
	server.FastForward(10 * time.Minute)

	require.NoError(t, store.Replace(ctx, created.ID, session.User{ID: 1, Username: "jdoe", ReadingGoal: 25}))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.User.ReadingGoal)
	assert.Equal(t, 50*time.Minute, server.TTL("session:"+created.ID))

	assert.ErrorIs(t, store.Replace(ctx, "missing", session.User{}), session.ErrNotFound)
}

/*
TestRedisStore_DeleteForUser removes every session of one user only.
*/
func TestRedisStore_DeleteForUser(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	first, err := store.Create(ctx, session.User{ID: 1, Username: "jdoe"})
	require.NoError(t, err)
	second, err := store.Create(ctx, session.User{ID: 1, Username: "jdoe"})
	require.NoError(t, err)
	other, err := store.Create(ctx, session.User{ID: 2, Username: "asmith"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteForUser(ctx, 1))

	for _, id := range []string{first.ID, second.ID} {
		alive, err := store.Exists(ctx, id)
		require.NoError(t, err)
		assert.False(t, alive)
	}
	alive, err := store.Exists(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, alive)
}
