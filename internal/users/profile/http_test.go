// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/users/profile"
	"github.com/taibuivan/shelfwise/pkg/pointer"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 24)...)

type memoryRepository struct {
	profiles map[int]*profile.Profile
	nextID   int
	updates  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{profiles: map[int]*profile.Profile{}}
}

func (m *memoryRepository) ListProfiles(_ context.Context) ([]*profile.Profile, error) {
	out := []*profile.Profile{}
	for id := 1; id <= m.nextID; id++ {
		if p, ok := m.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepository) GetProfile(_ context.Context, id int) (*profile.Profile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, profile.ErrNotFound
}

func (m *memoryRepository) GetByUsername(_ context.Context, username string) (*profile.Profile, error) {
	for _, p := range m.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (m *memoryRepository) CreateProfile(_ context.Context, p *profile.Profile) error {
	m.nextID++
	p.ID = m.nextID
	m.profiles[p.ID] = p
	return nil
}

func (m *memoryRepository) UpdateProfile(_ context.Context, id int, bio *string, picture []byte) error {
	p, ok := m.profiles[id]
	if !ok {
		return profile.ErrNotFound
	}
	m.updates++
	if bio != nil {
		p.Bio = bio
	}
	if picture != nil {
		p.Picture = picture
	}
	return nil
}

func (m *memoryRepository) DeleteProfile(_ context.Context, id int) error {
	p, ok := m.profiles[id]
	if !ok {
		return profile.ErrNotFound
	}
	if p.Username != "" {
		return profile.ErrInUse
	}
	delete(m.profiles, id)
	return nil
}

func newRouter(repo *memoryRepository) http.Handler {
	service := profile.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	profile.NewHandler(service).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))
	return recorder
}

/*
TestHandler_UpdateProfile_KeepsOmittedFields replaces the picture and leaves the bio alone.
*/
func TestHandler_UpdateProfile_KeepsOmittedFields(t *testing.T) {
	repo := newMemoryRepository()
	router := newRouter(repo)

	recorder := serve(router, http.MethodPost, "/", `{"bio":"Reads on trains"}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	encoded := base64.StdEncoding.EncodeToString(pngBytes)
	recorder = serve(router, http.MethodPut, "/1", `{"picture":"`+encoded+`"}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Reads on trains", body["bio"])
	assert.Equal(t, "data:image/png;base64,"+encoded, body["picture"])
	assert.Equal(t, pngBytes, repo.profiles[1].Picture)
}

/*
TestHandler_UpdateProfile_BadPicture rejects a non-image payload before storage.
*/
func TestHandler_UpdateProfile_BadPicture(t *testing.T) {
	repo := newMemoryRepository()
	repo.profiles[1] = &profile.Profile{ID: 1, Bio: pointer.To("unchanged")}
	repo.nextID = 1

	text := base64.StdEncoding.EncodeToString([]byte("plain text"))
	recorder := serve(newRouter(repo), http.MethodPut, "/1", `{"picture":"`+text+`"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, repo.updates)
}

/*
TestHandler_Routes exercises the remaining endpoints.
*/
func TestHandler_Routes(t *testing.T) {
	repo := newMemoryRepository()
	repo.profiles[1] = &profile.Profile{ID: 1, Username: "jdoe", Bio: pointer.To("Owner")}
	repo.profiles[2] = &profile.Profile{ID: 2}
	repo.nextID = 2
	router := newRouter(repo)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"list", http.MethodGet, "/", "", http.StatusOK},
		{"get", http.MethodGet, "/1", "", http.StatusOK},
		{"get_bad_id", http.MethodGet, "/abc", "", http.StatusBadRequest},
		{"get_missing", http.MethodGet, "/9", "", http.StatusNotFound},
		{"by_username", http.MethodGet, "/username/jdoe", "", http.StatusOK},
		{"by_username_missing", http.MethodGet, "/username/ghost", "", http.StatusNotFound},
		{"update_missing", http.MethodPut, "/9", `{"bio":"x"}`, http.StatusNotFound},
		{"delete_owned", http.MethodDelete, "/1", "", http.StatusBadRequest},
		{"delete_unclaimed", http.MethodDelete, "/2", "", http.StatusNoContent},
		{"delete_missing", http.MethodDelete, "/2", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}

	assert.Contains(t, repo.profiles, 1)
}
