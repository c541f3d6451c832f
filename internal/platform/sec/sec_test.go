// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestPassword_HashAndCheck verifies bcrypt round trips and rejects wrong input.
*/
func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := sec.HashPassword("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3r$ecret", hash)
	assert.True(t, sec.VerifyPassword(hash, "Sup3r$ecret"))
	assert.False(t, sec.VerifyPassword(hash, "sup3r$ecret"))
	assert.False(t, sec.VerifyPassword("not-a-hash", "Sup3r$ecret"))
}

/*
TestTokenService_RoundTrip issues and verifies a session token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	tokens, err := sec.NewTokenService(testSecret, "shelfwise.test")
	require.NoError(t, err)

	token, err := tokens.GenerateSessionToken("session-1", 42, "jdoe", time.Hour)
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID())
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
}

/*
TestTokenService_Rejects covers tampering, expiry and foreign keys.
*/
func TestTokenService_Rejects(t *testing.T) {
	tokens, err := sec.NewTokenService(testSecret, "shelfwise.test")
	require.NoError(t, err)

	t.Run("tampered", func(t *testing.T) {
		token, err := tokens.GenerateSessionToken("session-1", 42, "jdoe", time.Hour)
		require.NoError(t, err)
		parts := strings.Split(token, ".")
		parts[2] = strings.Repeat("A", len(parts[2]))
		_, err = tokens.VerifyToken(strings.Join(parts, "."))
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := tokens.GenerateSessionToken("session-1", 42, "jdoe", -time.Minute)
		require.NoError(t, err)
		_, err = tokens.VerifyToken(token)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("other_secret", func(t *testing.T) {
		other, err := sec.NewTokenService(strings.Repeat("z", 32), "shelfwise.test")
		require.NoError(t, err)
		token, err := other.GenerateSessionToken("session-1", 42, "jdoe", time.Hour)
		require.NoError(t, err)
		_, err = tokens.VerifyToken(token)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})
}

/*
TestNewTokenService_ShortSecret refuses weak keys.
*/
func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "shelfwise.test")
	assert.Error(t, err)
}
