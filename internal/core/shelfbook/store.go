// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shelfbook

import "context"

type Repository interface {
	ListPlacements(context context.Context) ([]*Placement, error)
	ListByShelf(context context.Context, bookshelfID int) ([]*Placement, error)

	BookExists(context context.Context, bookID int) (bool, error)
	ShelfExists(context context.Context, bookshelfID int) (bool, error)

	CreatePlacement(context context.Context, placement Placement) error
	MovePlacement(context context.Context, from, to Placement) error
	DeletePlacement(context context.Context, placement Placement) error
}
