// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfwise/internal/core/book"
	"github.com/taibuivan/shelfwise/internal/core/progress"
	"github.com/taibuivan/shelfwise/internal/platform/postgres/postgrestest"
)

/*
TestPostgresRepository_Recommendations checks the favorite tie-break and that
finished books are never recommended.
*/
func TestPostgresRepository_Recommendations(t *testing.T) {
	pool := postgrestest.NewPool(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	books := book.NewService(book.NewPostgresRepository(pool), logger)
	service := progress.NewService(progress.NewPostgresRepository(pool), logger)

	add := func(title, isbn, first, last, genreName string) *book.Book {
		created, err := books.CreateBook(ctx, book.Input{
			Title: title, ISBN: isbn, PageCount: 100,
			AuthorFirstName: first, AuthorLastName: last,
			Genres: []string{genreName},
		})
		require.NoError(t, err)
		return created
	}
	a1 := add("A1", "978-0000000001", "Ann", "Alpha", "X")
	add("A2", "978-0000000002", "Ann", "Alpha", "X")
	add("A3", "978-0000000003", "Ann", "Alpha", "Y")
	add("B1", "978-0000000004", "Bob", "Beta", "Y")

	var profileID int
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO profile DEFAULT VALUES RETURNING profile_id`).Scan(&profileID))
	_, err := pool.Exec(ctx, `
		INSERT INTO "user" (first_name, last_name, username, email, password, profile_id)
		VALUES ('Jane', 'Doe', 'jdoe', 'jdoe@example.com', 'x', $1)`, profileID)
	require.NoError(t, err)

	var userID int
	require.NoError(t, pool.QueryRow(ctx, `SELECT user_id FROM "user" WHERE username = 'jdoe'`).Scan(&userID))

	t.Run("nothing_read", func(t *testing.T) {
		favorite, err := service.MostReadAuthor(ctx, userID)
		require.NoError(t, err)
		assert.False(t, favorite.Found)

		recommended, err := service.RecommendByGenre(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, recommended)
	})

	for _, entry := range []progress.CreateInput{
		{Username: "jdoe", Title: "A1", Status: progress.StatusRead},
		{Username: "jdoe", Title: "B1", Status: progress.StatusRead},
		{Username: "jdoe", Title: "A2", Status: progress.StatusReading, CurrentPage: 40},
	} {
		_, err := service.CreateEntry(ctx, entry)
		require.NoError(t, err)
	}

	t.Run("tie_breaks_on_smallest_id", func(t *testing.T) {
		favorite, err := service.MostReadAuthor(ctx, userID)
		require.NoError(t, err)
		require.True(t, favorite.Found)
		assert.Equal(t, a1.AuthorID, favorite.Author.ID)
		assert.Equal(t, 1, favorite.ReadCount)

		genreFavorite, err := service.MostReadGenre(ctx, userID)
		require.NoError(t, err)
		require.True(t, genreFavorite.Found)
		assert.Equal(t, "X", genreFavorite.Genre.Name)
	})

	t.Run("unread_only", func(t *testing.T) {
		byAuthor, err := service.RecommendByAuthor(ctx, userID)
		require.NoError(t, err)
		titles := []string{}
		for _, r := range byAuthor {
			titles = append(titles, r.Title)
		}
		assert.Equal(t, []string{"A2", "A3"}, titles)

		byGenre, err := service.RecommendByGenre(ctx, userID)
		require.NoError(t, err)
		require.Len(t, byGenre, 1)
		assert.Equal(t, "A2", byGenre[0].Title)
	})

	t.Run("reading_progress", func(t *testing.T) {
		reading, err := service.ListReading(ctx, userID)
		require.NoError(t, err)
		require.Len(t, reading, 1)
		assert.Equal(t, 40.0, reading[0].Percentage)
		assert.Equal(t, "Ann Alpha", reading[0].AuthorName)

		read, err := service.TotalRead(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, read.Total)
	})
}
