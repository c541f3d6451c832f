// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"

	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// FindByName returns every author whose first or last name equals name.
func (service *Service) FindByName(context context.Context, name string) ([]*Author, error) {
	if err := (&validate.Validator{}).Required("name", name).Err(); err != nil {
		return nil, err
	}

	authors, err := service.repo.FindByName(context, name)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, ErrNotFound
	}
	return authors, nil
}

func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	if err := validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.Int("author_id", author.ID))
	return nil
}

func (service *Service) UpdateAuthor(context context.Context, id int, author *Author) error {
	author.ID = id
	if err := validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.Int("author_id", author.ID))
	return nil
}

// DeleteAuthor removes an author that no book references.
func (service *Service) DeleteAuthor(context context.Context, id int) error {
	books, err := service.repo.CountBooks(context, id)
	if err != nil {
		return err
	}
	if books > 0 {
		return ErrHasBooks
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}

func validateAuthor(author *Author) error {
	return (&validate.Validator{}).
		Required(FieldFirstName, author.FirstName).MaxLen(FieldFirstName, author.FirstName, 100).
		Required(FieldLastName, author.LastName).MaxLen(FieldLastName, author.LastName, 100).
		Err()
}
