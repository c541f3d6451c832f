// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shelfbook_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/shelfbook"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

type memoryRepository struct {
	placements map[shelfbook.Placement]bool
	books      map[int]bool
	shelves    map[int]bool
}

func (m *memoryRepository) ListPlacements(_ context.Context) ([]*shelfbook.Placement, error) {
	out := []*shelfbook.Placement{}
	for p := range m.placements {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (m *memoryRepository) ListByShelf(_ context.Context, bookshelfID int) ([]*shelfbook.Placement, error) {
	out := []*shelfbook.Placement{}
	for p := range m.placements {
		if p.BookshelfID == bookshelfID {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *memoryRepository) BookExists(_ context.Context, bookID int) (bool, error) {
	return m.books[bookID], nil
}

func (m *memoryRepository) ShelfExists(_ context.Context, bookshelfID int) (bool, error) {
	return m.shelves[bookshelfID], nil
}

func (m *memoryRepository) CreatePlacement(_ context.Context, placement shelfbook.Placement) error {
	if m.placements[placement] {
		return apperr.Conflict("Book is already on this bookshelf")
	}
	m.placements[placement] = true
	return nil
}

func (m *memoryRepository) MovePlacement(_ context.Context, from, to shelfbook.Placement) error {
	if !m.placements[from] {
		return shelfbook.ErrNotFound
	}
	delete(m.placements, from)
	m.placements[to] = true
	return nil
}

func (m *memoryRepository) DeletePlacement(_ context.Context, placement shelfbook.Placement) error {
	if !m.placements[placement] {
		return shelfbook.ErrNotFound
	}
	delete(m.placements, placement)
	return nil
}

/*
TestService_Placements requires both ends to exist before linking.
*/
func TestService_Placements(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{
		placements: map[shelfbook.Placement]bool{},
		books:      map[int]bool{1: true, 2: true},
		shelves:    map[int]bool{5: true, 6: true},
	}
	service := shelfbook.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := service.ListByShelf(ctx, 5)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	require.NoError(t, service.AddBook(ctx, shelfbook.Placement{BookshelfID: 5, BookID: 1}))

	err = service.AddBook(ctx, shelfbook.Placement{BookshelfID: 9, BookID: 1})
	assert.Equal(t, shelfbook.ErrShelfNotFound, err)

	err = service.AddBook(ctx, shelfbook.Placement{BookshelfID: 5, BookID: 9})
	assert.Equal(t, shelfbook.ErrBookNotFound, err)

	err = service.AddBook(ctx, shelfbook.Placement{BookshelfID: 5, BookID: 1, Title: "ignored"})
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))

	require.NoError(t, service.MoveBook(ctx,
		shelfbook.Placement{BookshelfID: 5, BookID: 1},
		shelfbook.Placement{BookshelfID: 6, BookID: 2},
	))
	onShelf, err := service.ListByShelf(ctx, 6)
	require.NoError(t, err)
	require.Len(t, onShelf, 1)
	assert.Equal(t, 2, onShelf[0].BookID)

	require.NoError(t, service.RemoveBook(ctx, shelfbook.Placement{BookshelfID: 6, BookID: 2}))
	err = service.RemoveBook(ctx, shelfbook.Placement{BookshelfID: 6, BookID: 2})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
