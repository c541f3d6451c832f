// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Repository persists books together with their author and genre links.
type Repository interface {
	ListBooks(context context.Context) ([]*Book, error)
	GetBook(context context.Context, id int) (*Book, error)
	FindByTitle(context context.Context, title string) ([]*Book, error)

	// Search matches the keyword against title, genre names and author names.
	Search(context context.Context, keyword string) ([]*Book, error)

	// ISBNTaken reports whether another book than excludeID holds isbn.
	ISBNTaken(context context.Context, isbn string, excludeID int) (bool, error)

	/*
		CreateBook resolves the author and genres by name, creating missing rows,
		inserts the book and links its genres in a single transaction.

		Returns:
		  - int: The new book id
		  - error: Storage failures; nothing is written on error
	*/
	CreateBook(context context.Context, input Input) (int, error)

	// UpdateBook rewrites the book row and replaces its genre links in one transaction.
	UpdateBook(context context.Context, id int, input Input) error

	// DeleteBook removes the dependent join rows and reviews before the book itself.
	DeleteBook(context context.Context, id int) error
}
