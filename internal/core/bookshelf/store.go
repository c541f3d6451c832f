// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf

import "context"

type Repository interface {
	ListShelves(context context.Context) ([]*Bookshelf, error)
	GetShelf(context context.Context, id int) (*Bookshelf, error)
	ListByUsername(context context.Context, username string) ([]*Bookshelf, error)
	ListByView(context context.Context, view View) ([]*Bookshelf, error)
	ListByName(context context.Context, name string) ([]*Bookshelf, error)

	FindUserID(context context.Context, username string) (int, bool, error)

	// NameTaken reports whether a shelf other than excludeID uses name.
	NameTaken(context context.Context, name string, excludeID int) (bool, error)

	CreateShelf(context context.Context, shelf *Bookshelf) error
	UpdateShelf(context context.Context, id int, name string, view View) error

	// DeleteShelf removes the shelf's bookshelf_books rows and the shelf in one transaction.
	DeleteShelf(context context.Context, id int) error
}
