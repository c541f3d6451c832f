// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/api"
	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/book"
	"github.com/taibuivan/shelfwise/internal/core/bookgenre"
	"github.com/taibuivan/shelfwise/internal/core/bookshelf"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/core/progress"
	"github.com/taibuivan/shelfwise/internal/core/review"
	"github.com/taibuivan/shelfwise/internal/core/shelfbook"
	"github.com/taibuivan/shelfwise/internal/platform/config"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
	"github.com/taibuivan/shelfwise/internal/users/account"
	"github.com/taibuivan/shelfwise/internal/users/profile"
)

type noSessions struct{}

func (noSessions) Exists(_ context.Context, _ string) (bool, error) { return false, nil }

// newRouter mounts every handler; none of the tested paths reach a service.
func newRouter(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", constants.AuthIssuer)
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	handlers := api.Handlers{
		Liveness:       liveness,
		Readiness:      readiness,
		Users:          account.NewHandler(nil, false),
		Profiles:       profile.NewHandler(nil),
		Authors:        author.NewHandler(nil),
		Genres:         genre.NewHandler(nil),
		Books:          book.NewHandler(nil),
		Reviews:        review.NewHandler(nil),
		BooksByUser:    progress.NewHandler(nil),
		BookGenres:     bookgenre.NewHandler(nil),
		Bookshelves:    bookshelf.NewHandler(nil),
		BookshelfBooks: shelfbook.NewHandler(nil),
		Images:         image.NewHandler(nil),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{Environment: "development"}
	return api.NewRouter(ctx, cfg, logger, api.Auth{Verifier: tokens, Sessions: noSessions{}}, handlers)
}

/*
TestRouter_Health reports liveness and per-dependency readiness.
*/
func TestRouter_Health(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		ok := func(context.Context) error { return nil }
		router := newRouter(t, api.HealthDependencies{CheckDatabase: ok, CheckSessions: ok})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
	})

	t.Run("degraded", func(t *testing.T) {
		router := newRouter(t, api.HealthDependencies{
			CheckDatabase: func(context.Context) error { return nil },
			CheckSessions: func(context.Context) error { return errors.New("connection refused") },
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var body struct {
			Status string `json:"status"`
			Checks []struct {
				Name string `json:"name"`
				OK   bool   `json:"ok"`
			} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Status)
		require.Len(t, body.Checks, 2)
		assert.True(t, body.Checks[0].OK)
		assert.False(t, body.Checks[1].OK)
	})
}

/*
TestRouter_Guards checks the session guard, bearer parsing and path validation
before any service is consulted.
*/
func TestRouter_Guards(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{})

	tests := []struct {
		name   string
		method string
		path   string
		header string
		status int
	}{
		{"me_anonymous", http.MethodGet, "/api/users/me", "", http.StatusUnauthorized},
		{"logout_anonymous", http.MethodPost, "/api/users/logout", "", http.StatusUnauthorized},
		{"malformed_bearer", http.MethodGet, "/api/books/id/1", "Token abc", http.StatusUnauthorized},
		{"invalid_bearer", http.MethodGet, "/api/books/id/1", "Bearer abc", http.StatusUnauthorized},
		{"bad_book_id", http.MethodGet, "/api/books/id/zero", "", http.StatusBadRequest},
		{"bad_shelf_id", http.MethodDelete, "/api/bookshelf/-1", "", http.StatusBadRequest},
		{"unknown_route", http.MethodGet, "/api/comics", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}
