// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/review"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
)

// memoryRepository counts writes so tests can prove a request stopped early.
type memoryRepository struct {
	reviews map[int]*review.Review
	books   map[int]string
	writes  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{reviews: map[int]*review.Review{}, books: map[int]string{1: "Dune"}}
}

func (m *memoryRepository) ListReviews(_ context.Context) ([]*review.Review, error) {
	out := []*review.Review{}
	for _, r := range m.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryRepository) GetReview(_ context.Context, id int) (*review.Review, error) {
	if r, ok := m.reviews[id]; ok {
		return r, nil
	}
	return nil, review.ErrNotFound
}

func (m *memoryRepository) FindByTitle(_ context.Context, title string) ([]*review.Review, error) {
	out := []*review.Review{}
	for _, r := range m.reviews {
		if strings.Contains(strings.ToLower(r.BookTitle), strings.ToLower(title)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindByRating(_ context.Context, rating int) ([]*review.Review, error) {
	out := []*review.Review{}
	for _, r := range m.reviews {
		if r.Rating == rating {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepository) ResolveBook(_ context.Context, bookID int, title string) (int, bool, error) {
	if bookID > 0 {
		_, ok := m.books[bookID]
		return bookID, ok, nil
	}
	for id, t := range m.books {
		if t == title {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (m *memoryRepository) CreateReview(_ context.Context, r *review.Review) error {
	m.writes++
	r.ID = len(m.reviews) + 1
	r.BookTitle = m.books[r.BookID]
	r.CreatedAt = time.Now()
	m.reviews[r.ID] = r
	return nil
}

func (m *memoryRepository) UpdateReview(_ context.Context, r *review.Review) error {
	m.writes++
	if _, ok := m.reviews[r.ID]; !ok {
		return review.ErrNotFound
	}
	r.BookTitle = m.books[r.BookID]
	m.reviews[r.ID] = r
	return nil
}

func (m *memoryRepository) DeleteReview(_ context.Context, id int) error {
	if _, ok := m.reviews[id]; !ok {
		return review.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

func newRouter(repo *memoryRepository) http.Handler {
	service := review.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	review.NewHandler(service).RegisterRoutes(router)
	return router
}

/*
TestHandler_CreateReview_RatingBounds rejects ratings outside 1..5 before any write.
*/
func TestHandler_CreateReview_RatingBounds(t *testing.T) {
	for _, rating := range []string{"0", "6", "-2"} {
		t.Run("rating_"+rating, func(t *testing.T) {
			repo := newMemoryRepository()
			body := `{"book_id":1,"rating":` + rating + `,"description":"Fine"}`

			recorder := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			var envelope respond.ErrorEnvelope
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
			assert.Equal(t, apperr.CodeValidation, envelope.Code)
			require.NotEmpty(t, envelope.Details)
			assert.Equal(t, "rating", envelope.Details[0].Field)
			assert.Zero(t, repo.writes)
		})
	}
}

/*
TestHandler_Routes resolves books by id or title and filters by rating.
*/
func TestHandler_Routes(t *testing.T) {
	repo := newMemoryRepository()
	router := newRouter(repo)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"create_by_id", http.MethodPost, "/", `{"book_id":1,"rating":5,"description":"Spice"}`, http.StatusCreated},
		{"create_by_title", http.MethodPost, "/", `{"title":"Dune","rating":4,"description":"Sand"}`, http.StatusCreated},
		{"create_unknown_title", http.MethodPost, "/", `{"title":"Emma","rating":4,"description":"?"}`, http.StatusNotFound},
		{"create_no_book", http.MethodPost, "/", `{"rating":4,"description":"?"}`, http.StatusBadRequest},
		{"create_no_description", http.MethodPost, "/", `{"book_id":1,"rating":4}`, http.StatusBadRequest},
		{"by_title_substring", http.MethodGet, "/title/un", "", http.StatusOK},
		{"by_title_missing", http.MethodGet, "/title/Emma", "", http.StatusNotFound},
		{"by_rating", http.MethodGet, "/rating/5", "", http.StatusOK},
		{"by_rating_out_of_range", http.MethodGet, "/rating/9", "", http.StatusBadRequest},
		{"by_rating_not_number", http.MethodGet, "/rating/five", "", http.StatusBadRequest},
		{"update", http.MethodPut, "/1", `{"book_id":1,"rating":3,"description":"Reread"}`, http.StatusOK},
		{"update_missing", http.MethodPut, "/9", `{"book_id":1,"rating":3,"description":"Reread"}`, http.StatusNotFound},
		{"delete", http.MethodDelete, "/2", "", http.StatusNoContent},
		{"delete_missing", http.MethodDelete, "/2", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}

	assert.Equal(t, 3, repo.reviews[1].Rating)
}
