// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

type Repository interface {
	ListReviews(context context.Context) ([]*Review, error)
	GetReview(context context.Context, id int) (*Review, error)

	// FindByTitle matches reviews whose book title contains title, ignoring case.
	FindByTitle(context context.Context, title string) ([]*Review, error)
	FindByRating(context context.Context, rating int) ([]*Review, error)

	// ResolveBook returns the id of the book with the given id or exact title.
	ResolveBook(context context.Context, bookID int, title string) (int, bool, error)

	CreateReview(context context.Context, review *Review) error
	UpdateReview(context context.Context, review *Review) error
	DeleteReview(context context.Context, id int) error
}
