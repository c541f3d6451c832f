// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/book"
	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/postgres/postgrestest"
	"github.com/taibuivan/shelfwise/pkg/date"
)

/*
TestPostgresRepository_Books runs the book store against a migrated schema.
*/
func TestPostgresRepository_Books(t *testing.T) {
	pool := postgrestest.NewPool(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	books := book.NewService(book.NewPostgresRepository(pool), logger)
	authors := author.NewService(author.NewPostgresRepository(pool), logger)

	published := date.New(1974, 5, 1)
	input := validInput("978-0061054884")
	input.DatePublished = &published
	input.Genres = []string{"A", "B"}

	first, err := books.CreateBook(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, first.Genres)
	assert.Equal(t, "Ursula Le Guin", first.AuthorName)
	require.NotNil(t, first.DatePublished)
	assert.Equal(t, "1974-05-01", first.DatePublished.String())

	t.Run("author_reused", func(t *testing.T) {
		second, err := books.CreateBook(ctx, validInput("978-0441478125"))
		require.NoError(t, err)
		assert.Equal(t, first.AuthorID, second.AuthorID)

		found, err := authors.FindByName(ctx, "Ursula")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("genres_replaced", func(t *testing.T) {
		input.Genres = []string{"C"}
		updated, err := books.UpdateBook(ctx, first.ID, input)
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, updated.Genres)
	})

	t.Run("duplicate_isbn", func(t *testing.T) {
		_, err := books.CreateBook(ctx, validInput("978-0061054884"))
		assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
	})

	t.Run("keyword_matches_author_and_genre", func(t *testing.T) {
		byAuthor, err := books.Search(ctx, "guin")
		require.NoError(t, err)
		assert.Len(t, byAuthor, 2)

		byGenre, err := books.Search(ctx, "c")
		require.NoError(t, err)
		assert.NotEmpty(t, byGenre)

		none, err := books.Search(ctx, "100%")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("author_delete_blocked", func(t *testing.T) {
		err := authors.DeleteAuthor(ctx, first.AuthorID)
		assert.True(t, apperr.IsCode(err, apperr.CodeRelatedRecords))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, books.DeleteBook(ctx, first.ID))
		_, err := books.GetBook(ctx, first.ID)
		assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
		assert.True(t, apperr.IsCode(books.DeleteBook(ctx, first.ID), apperr.CodeNotFound))
	})
}
