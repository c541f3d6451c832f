// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Repository interface {
	ListGenres(context context.Context) ([]*Genre, error)
	GetGenre(context context.Context, id int) (*Genre, error)
	GetGenreByName(context context.Context, name string) (*Genre, error)
	CreateGenre(context context.Context, g *Genre) error
	UpdateGenre(context context.Context, g *Genre) error
	DeleteGenre(context context.Context, id int) error

	// CountBooks reports how many bookgenre rows reference the genre.
	CountBooks(context context.Context, id int) (int, error)
}
