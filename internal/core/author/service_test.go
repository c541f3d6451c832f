// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// memoryRepository is an in-process [author.Repository].
type memoryRepository struct {
	authors map[int]*author.Author
	books   map[int]int
	nextID  int
	deleted []int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{authors: map[int]*author.Author{}, books: map[int]int{}}
}

func (m *memoryRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	out := []*author.Author{}
	for _, a := range m.authors {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryRepository) GetAuthor(_ context.Context, id int) (*author.Author, error) {
	a, ok := m.authors[id]
	if !ok {
		return nil, author.ErrNotFound
	}
	return a, nil
}

func (m *memoryRepository) FindByName(_ context.Context, name string) ([]*author.Author, error) {
	out := []*author.Author{}
	for _, a := range m.authors {
		if a.FirstName == name || a.LastName == name {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	m.nextID++
	a.ID = m.nextID
	m.authors[a.ID] = a
	return nil
}

func (m *memoryRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	if _, ok := m.authors[a.ID]; !ok {
		return author.ErrNotFound
	}
	m.authors[a.ID] = a
	return nil
}

func (m *memoryRepository) DeleteAuthor(_ context.Context, id int) error {
	if _, ok := m.authors[id]; !ok {
		return author.ErrNotFound
	}
	delete(m.authors, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memoryRepository) CountBooks(_ context.Context, id int) (int, error) {
	return m.books[id], nil
}

func newService(repo author.Repository) *author.Service {
	return author.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_DeleteAuthor covers the related-records guard.
*/
func TestService_DeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked_by_books", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newService(repo)
		a := &author.Author{FirstName: "Jane", LastName: "Doe"}
		require.NoError(t, service.CreateAuthor(ctx, a))
		repo.books[a.ID] = 1

		err := service.DeleteAuthor(ctx, a.ID)
		assert.True(t, apperr.IsCode(err, apperr.CodeRelatedRecords))
		assert.Empty(t, repo.deleted)

		got, err := service.GetAuthor(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", got.FirstName)
	})

	t.Run("no_books", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newService(repo)
		a := &author.Author{FirstName: "Jane", LastName: "Doe"}
		require.NoError(t, service.CreateAuthor(ctx, a))

		require.NoError(t, service.DeleteAuthor(ctx, a.ID))
		assert.Equal(t, []int{a.ID}, repo.deleted)
	})

	t.Run("missing", func(t *testing.T) {
		err := newService(newMemoryRepository()).DeleteAuthor(ctx, 99)
		assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	})
}

/*
TestService_CreateAuthor rejects blank name parts before storage.
*/
func TestService_CreateAuthor(t *testing.T) {
	tests := []struct {
		name   string
		input  author.Author
		fields []string
	}{
		{"valid", author.Author{FirstName: "Ursula", LastName: "Le Guin"}, nil},
		{"missing_first", author.Author{LastName: "Le Guin"}, []string{author.FieldFirstName}},
		{"missing_both", author.Author{FirstName: " "}, []string{author.FieldFirstName, author.FieldLastName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			input := tt.input
			err := newService(repo).CreateAuthor(context.Background(), &input)

			if tt.fields == nil {
				require.NoError(t, err)
				assert.Positive(t, input.ID)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.Len(t, ae.Details, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, ae.Details[i].Field)
			}
			assert.Empty(t, repo.authors)
		})
	}
}

/*
TestService_FindByName matches either half of the name and reports misses.
*/
func TestService_FindByName(t *testing.T) {
	ctx := context.Background()
	service := newService(newMemoryRepository())
	require.NoError(t, service.CreateAuthor(ctx, &author.Author{FirstName: "Jane", LastName: "Doe"}))
	require.NoError(t, service.CreateAuthor(ctx, &author.Author{FirstName: "John", LastName: "Jane"}))

	found, err := service.FindByName(ctx, "Jane")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	_, err = service.FindByName(ctx, "jane")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
