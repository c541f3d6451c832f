// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

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
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

func (service *Service) GetGenre(context context.Context, id int) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}

func (service *Service) GetGenreByName(context context.Context, name string) (*Genre, error) {
	if err := (&validate.Validator{}).Required(FieldName, name).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetGenreByName(context, name)
}

func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	if err := validateGenre(genre); err != nil {
		return err
	}

	if err := service.repo.CreateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_created", slog.Int("genre_id", genre.ID), slog.String("name", genre.Name))
	return nil
}

func (service *Service) UpdateGenre(context context.Context, id int, genre *Genre) error {
	genre.ID = id
	if err := validateGenre(genre); err != nil {
		return err
	}

	if err := service.repo.UpdateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_updated", slog.Int("genre_id", id))
	return nil
}

// DeleteGenre removes a genre that no book is linked to.
func (service *Service) DeleteGenre(context context.Context, id int) error {
	linked, err := service.repo.CountBooks(context, id)
	if err != nil {
		return err
	}
	if linked > 0 {
		return ErrHasBooks
	}

	if err := service.repo.DeleteGenre(context, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.Int("genre_id", id))
	return nil
}

func validateGenre(genre *Genre) error {
	return (&validate.Validator{}).
		Required(FieldName, genre.Name).
		MaxLen(FieldName, genre.Name, 100).
		Err()
}
