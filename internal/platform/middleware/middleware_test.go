// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/ctxutil"
	"github.com/taibuivan/shelfwise/internal/platform/middleware"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func ok(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

/*
TestRequestID keeps a client id, replaces an oversized one and issues one when absent.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"client_supplied", "abc-123", true},
		{"missing", "", false},
		{"oversized", strings.Repeat("x", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderXRequestID, tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
				assert.Len(t, seen, 36)
			}
		})
	}
}

/*
TestRateLimit answers the request past the burst with 429 and keeps IPs apart.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	handler := middleware.RateLimit(ctx, 0.001, 2)(http.HandlerFunc(ok))

	serve := func(addr string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = addr
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1001").Code)

	limited := serve("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(limited.Body).Decode(&envelope))
	assert.Equal(t, apperr.CodeRateLimited, envelope.Code)

	assert.Equal(t, http.StatusOK, serve("10.0.0.2:1000").Code)
}

/*
TestPanicRecovery converts a panic into a generic 500 body.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(discard)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "boom")
}

/*
TestStructuredLogger hands the request logger to the handler.
*/
func TestStructuredLogger(t *testing.T) {
	var got *slog.Logger
	handler := middleware.StructuredLogger(discard)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		got = ctxutil.GetLogger(request.Context())
		writer.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	require.NotNil(t, got)
	assert.NotSame(t, slog.Default(), got)
}

type devConfig struct{ dev bool }

func (c devConfig) IsDevelopment() bool      { return c.dev }
func (c devConfig) AllowedOrigins() []string { return []string{"https://shelf.example"} }

/*
TestCORS allows the configured origin outside development and any origin inside it.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		origin  string
		allowed bool
	}{
		{"listed", false, "https://shelf.example", true},
		{"unlisted", false, "https://evil.example", false},
		{"development", true, "http://localhost:5173", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(devConfig{dev: tt.dev})(http.HandlerFunc(ok))
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
