// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/bookshelf"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

type memoryRepository struct {
	shelves map[int]*bookshelf.Bookshelf
	users   map[string]int
	nextID  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{shelves: map[int]*bookshelf.Bookshelf{}, users: map[string]int{"jdoe": 1}}
}

func (m *memoryRepository) filter(keep func(*bookshelf.Bookshelf) bool) []*bookshelf.Bookshelf {
	out := []*bookshelf.Bookshelf{}
	for id := 1; id <= m.nextID; id++ {
		if s, ok := m.shelves[id]; ok && keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (m *memoryRepository) ListShelves(_ context.Context) ([]*bookshelf.Bookshelf, error) {
	return m.filter(func(*bookshelf.Bookshelf) bool { return true }), nil
}

func (m *memoryRepository) GetShelf(_ context.Context, id int) (*bookshelf.Bookshelf, error) {
	if s, ok := m.shelves[id]; ok {
		return s, nil
	}
	return nil, bookshelf.ErrNotFound
}

func (m *memoryRepository) ListByUsername(_ context.Context, username string) ([]*bookshelf.Bookshelf, error) {
	return m.filter(func(s *bookshelf.Bookshelf) bool { return s.Username == username }), nil
}

func (m *memoryRepository) ListByView(_ context.Context, view bookshelf.View) ([]*bookshelf.Bookshelf, error) {
	return m.filter(func(s *bookshelf.Bookshelf) bool { return s.View == view }), nil
}

func (m *memoryRepository) ListByName(_ context.Context, name string) ([]*bookshelf.Bookshelf, error) {
	return m.filter(func(s *bookshelf.Bookshelf) bool { return s.Name == name }), nil
}

func (m *memoryRepository) FindUserID(_ context.Context, username string) (int, bool, error) {
	id, ok := m.users[username]
	return id, ok, nil
}

func (m *memoryRepository) NameTaken(_ context.Context, name string, excludeID int) (bool, error) {
	taken := m.filter(func(s *bookshelf.Bookshelf) bool { return s.Name == name && s.ID != excludeID })
	return len(taken) > 0, nil
}

func (m *memoryRepository) CreateShelf(_ context.Context, shelf *bookshelf.Bookshelf) error {
	m.nextID++
	shelf.ID = m.nextID
	m.shelves[shelf.ID] = shelf
	return nil
}

func (m *memoryRepository) UpdateShelf(_ context.Context, id int, name string, view bookshelf.View) error {
	s, ok := m.shelves[id]
	if !ok {
		return bookshelf.ErrNotFound
	}
	s.Name, s.View = name, view
	return nil
}

func (m *memoryRepository) DeleteShelf(_ context.Context, id int) error {
	if _, ok := m.shelves[id]; !ok {
		return bookshelf.ErrNotFound
	}
	delete(m.shelves, id)
	return nil
}

func newService(repo bookshelf.Repository) *bookshelf.Service {
	return bookshelf.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateShelf covers the name conflict and the unknown owner.
*/
func TestService_CreateShelf(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	service := newService(repo)

	shelf, err := service.CreateShelf(ctx, "jdoe", "Favorites", bookshelf.ViewPublic)
	require.NoError(t, err)
	assert.Equal(t, 1, shelf.UserID)

	tests := []struct {
		name     string
		username string
		shelf    string
		view     bookshelf.View
		code     string
	}{
		{"duplicate_name", "jdoe", "Favorites", bookshelf.ViewPrivate, apperr.CodeConflict},
		{"unknown_user", "ghost", "Later", bookshelf.ViewPrivate, apperr.CodeNotFound},
		{"bad_view", "jdoe", "Later", "friends", apperr.CodeValidation},
		{"blank_name", "jdoe", " ", bookshelf.ViewPublic, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateShelf(ctx, tt.username, tt.shelf, tt.view)
			assert.True(t, apperr.IsCode(err, tt.code), "got %v", err)
		})
	}
	assert.Len(t, repo.shelves, 1)
}

/*
TestService_UpdateShelf may keep its own name but not take another's.
*/
func TestService_UpdateShelf(t *testing.T) {
	ctx := context.Background()
	service := newService(newMemoryRepository())

	first, err := service.CreateShelf(ctx, "jdoe", "Favorites", bookshelf.ViewPublic)
	require.NoError(t, err)
	_, err = service.CreateShelf(ctx, "jdoe", "Later", bookshelf.ViewPublic)
	require.NoError(t, err)

	updated, err := service.UpdateShelf(ctx, first.ID, "Favorites", bookshelf.ViewPrivate)
	require.NoError(t, err)
	assert.Equal(t, bookshelf.ViewPrivate, updated.View)

	_, err = service.UpdateShelf(ctx, first.ID, "Later", bookshelf.ViewPrivate)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

/*
TestService_Lists reports empty filtered lists as not found.
*/
func TestService_Lists(t *testing.T) {
	ctx := context.Background()
	service := newService(newMemoryRepository())
	_, err := service.CreateShelf(ctx, "jdoe", "Favorites", bookshelf.ViewPublic)
	require.NoError(t, err)

	public, err := service.ListByView(ctx, bookshelf.ViewPublic)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	_, err = service.ListByView(ctx, bookshelf.ViewPrivate)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = service.ListByView(ctx, "secret")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = service.ListByUsername(ctx, "ghost")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	require.NoError(t, service.DeleteShelf(ctx, 1))
	assert.True(t, apperr.IsCode(service.DeleteShelf(ctx, 1), apperr.CodeNotFound))
}
