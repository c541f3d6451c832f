// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListReviews(context context.Context) ([]*Review, error) {
	return service.repo.ListReviews(context)
}

func (service *Service) GetReview(context context.Context, id int) (*Review, error) {
	return service.repo.GetReview(context, id)
}

func (service *Service) FindByTitle(context context.Context, title string) ([]*Review, error) {
	title = strings.TrimSpace(title)
	if err := (&validate.Validator{}).Required(FieldTitle, title).Err(); err != nil {
		return nil, err
	}
	return nonEmpty(service.repo.FindByTitle(context, title))
}

func (service *Service) FindByRating(context context.Context, rating int) ([]*Review, error) {
	if err := (&validate.Validator{}).Range(FieldRating, rating, MinRating, MaxRating).Err(); err != nil {
		return nil, err
	}
	return nonEmpty(service.repo.FindByRating(context, rating))
}

func (service *Service) CreateReview(context context.Context, input Input) (*Review, error) {
	review, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateReview(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_created",
		slog.Int("review_id", review.ID),
		slog.Int("book_id", review.BookID),
		slog.Int("rating", review.Rating),
	)
	return service.repo.GetReview(context, review.ID)
}

func (service *Service) UpdateReview(context context.Context, id int, input Input) (*Review, error) {
	review, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}
	review.ID = id

	if err := service.repo.UpdateReview(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_updated", slog.Int("review_id", id))
	return service.repo.GetReview(context, id)
}

func (service *Service) DeleteReview(context context.Context, id int) error {
	if err := service.repo.DeleteReview(context, id); err != nil {
		return err
	}
	service.logger.Info("review_deleted", slog.Int("review_id", id))
	return nil
}

// prepare validates the input and resolves the reviewed book.
func (service *Service) prepare(context context.Context, input Input) (*Review, error) {
	input.BookTitle = strings.TrimSpace(input.BookTitle)
	input.Description = strings.TrimSpace(input.Description)

	err := (&validate.Validator{}).
		Range(FieldRating, input.Rating, MinRating, MaxRating).
		Required(FieldDescription, input.Description).
		Custom(FieldBookID, input.BookID <= 0 && input.BookTitle == "", "Provide book_id or title").
		Err()
	if err != nil {
		return nil, err
	}

	bookID, found, err := service.repo.ResolveBook(context, input.BookID, input.BookTitle)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookNotFound
	}

	return &Review{BookID: bookID, Rating: input.Rating, Description: input.Description}, nil
}

func nonEmpty(reviews []*Review, err error) ([]*Review, error) {
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNotFound
	}
	return reviews, nil
}
