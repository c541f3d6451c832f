// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/ctxutil"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.SessionClaims, error)
}

// SessionChecker reports whether a server-side session is still alive.
type SessionChecker interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// Authenticate resolves the caller from the session cookie or a bearer token.
//
// # Flow
//  1. Take the token from 'Authorization: Bearer <token>' or the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. Verify the signature via [TokenVerifier] and the session via [SessionChecker].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// A malformed bearer header is rejected with 401. A stale cookie is ignored so
// public routes keep working for a client that still holds it.
func Authenticate(verifier TokenVerifier, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Token Extraction ───────────────────────────────────────────
			token, fromHeader, ok := extractToken(request)
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(token)
			if err == nil {
				alive, lookupErr := sessions.Exists(request.Context(), claims.SessionID())
				if lookupErr != nil {
					respond.Error(writer, request, apperr.Internal(lookupErr))
					return
				}
				if !alive {
					claims, err = nil, sec.ErrInvalidToken
				}
			}

			if err != nil {
				if fromHeader {
					respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
					return
				}
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// extractToken returns the raw token, whether it came from the header, and
// false when the header is present but malformed.
func extractToken(request *http.Request) (string, bool, bool) {
	if header := request.Header.Get(constants.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
			return "", true, false
		}
		return token, true, true
	}

	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false, true
	}
	return cookie.Value, false, true
}
