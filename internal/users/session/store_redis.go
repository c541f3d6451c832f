// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/pkg/uuid"
)

// RedisStore implements session storage on a go-redis client.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store whose sessions live for ttl after their last refresh.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// TTL is the lifetime granted on creation and on every refresh.
func (store *RedisStore) TTL() time.Duration {
	return store.ttl
}

/*
Create stores a new session for user and indexes it under the user's id.

Returns:
  - *Session: The stored session with a fresh UUIDv7 id
  - error: Serialization or Redis failures
*/
func (store *RedisStore) Create(context context.Context, user User) (*Session, error) {
	session := &Session{ID: uuid.New(), User: user, CreatedAt: time.Now().UTC()}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("session_encode_failed: %w", err)
	}

	userKey := userIndexKey(user.ID)
	_, err = store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Set(context, sessionKey(session.ID), payload, store.ttl)
		pipe.SAdd(context, userKey, session.ID)
		pipe.Expire(context, userKey, store.ttl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis_session_create_failed: %w", err)
	}
	return session, nil
}

// Get returns the session or [ErrNotFound] when it expired or was deleted.
func (store *RedisStore) Get(context context.Context, id string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("session_decode_failed: %w", err)
	}
	return session, nil
}

// Exists reports whether the session is still alive.
func (store *RedisStore) Exists(context context.Context, id string) (bool, error) {
	count, err := store.client.Exists(context, sessionKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count > 0, nil
}

// Refresh extends the session by a full TTL. It returns [ErrNotFound] for a dead session.
func (store *RedisStore) Refresh(context context.Context, id string) error {
	ok, err := store.client.Expire(context, sessionKey(id), store.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis_session_refresh_failed: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Replace stores a new user snapshot, keeping the remaining TTL.
func (store *RedisStore) Replace(context context.Context, id string, user User) error {
	session, err := store.Get(context, id)
	if err != nil {
		return err
	}
	session.User = user

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session_encode_failed: %w", err)
	}
	if err := store.client.SetArgs(context, sessionKey(id), payload, redis.SetArgs{KeepTTL: true, Mode: "XX"}).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("redis_session_replace_failed: %w", err)
	}
	return nil
}

// Delete removes one session. Deleting an unknown session is not an error.
func (store *RedisStore) Delete(context context.Context, id string) error {
	session, err := store.Get(context, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Del(context, sessionKey(id))
		pipe.SRem(context, userIndexKey(session.User.ID), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

// DeleteForUser signs the user out of every session.
func (store *RedisStore) DeleteForUser(context context.Context, userID int) error {
	userKey := userIndexKey(userID)
	ids, err := store.client.SMembers(context, userKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_list_failed: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userKey)

	if err := store.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return constants.RedisPrefixSession + id
}

func userIndexKey(userID int) string {
	return constants.RedisPrefixUserSessions + strconv.Itoa(userID)
}
