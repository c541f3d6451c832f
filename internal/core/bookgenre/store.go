// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookgenre

import "context"

type Repository interface {
	ListLinks(context context.Context) ([]*Link, error)
	ListByBook(context context.Context, bookID int) ([]*Link, error)
	ListByGenre(context context.Context, genreID int) ([]*Link, error)

	BookExists(context context.Context, bookID int) (bool, error)
	GenreExists(context context.Context, genreID int) (bool, error)

	CreateLink(context context.Context, link Link) error

	// MoveLink re-points the (from) pair to (to). Not found when from is absent.
	MoveLink(context context.Context, from, to Link) error

	DeleteLink(context context.Context, link Link) error
}
