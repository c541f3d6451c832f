// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository persists authors.
type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id int) (*Author, error)

	// FindByName matches either the first or the last name exactly.
	FindByName(context context.Context, name string) ([]*Author, error)

	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id int) error

	// CountBooks reports how many books reference the author.
	CountBooks(context context.Context, id int) (int, error)
}
