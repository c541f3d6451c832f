// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookgenre

import (
	"context"
	"log/slog"
)

// Service manages individual bookgenre rows. Book writes replace the whole
// set through the book package instead.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListLinks(context context.Context) ([]*Link, error) {
	return service.repo.ListLinks(context)
}

// ListByBook returns the book's genre links; a book without genres is not found.
func (service *Service) ListByBook(context context.Context, bookID int) ([]*Link, error) {
	return nonEmpty(service.repo.ListByBook(context, bookID))
}

// ListByGenre returns the genre's book links; an unused genre is not found.
func (service *Service) ListByGenre(context context.Context, genreID int) ([]*Link, error) {
	return nonEmpty(service.repo.ListByGenre(context, genreID))
}

// CreateLink links an existing book to an existing genre.
func (service *Service) CreateLink(context context.Context, link Link) error {
	if err := service.ensureEnds(context, link); err != nil {
		return err
	}

	if err := service.repo.CreateLink(context, link); err != nil {
		return err
	}

	service.logger.Info("book_genre_linked",
		slog.Int("book_id", link.BookID),
		slog.Int("genre_id", link.GenreID),
	)
	return nil
}

func (service *Service) MoveLink(context context.Context, from, to Link) error {
	if err := service.ensureEnds(context, to); err != nil {
		return err
	}

	if err := service.repo.MoveLink(context, from, to); err != nil {
		return err
	}

	service.logger.Info("book_genre_moved",
		slog.Int("from_book_id", from.BookID),
		slog.Int("from_genre_id", from.GenreID),
		slog.Int("book_id", to.BookID),
		slog.Int("genre_id", to.GenreID),
	)
	return nil
}

func (service *Service) DeleteLink(context context.Context, link Link) error {
	if err := service.repo.DeleteLink(context, link); err != nil {
		return err
	}
	service.logger.Info("book_genre_unlinked",
		slog.Int("book_id", link.BookID),
		slog.Int("genre_id", link.GenreID),
	)
	return nil
}

func (service *Service) ensureEnds(context context.Context, link Link) error {
	found, err := service.repo.BookExists(context, link.BookID)
	if err != nil {
		return err
	}
	if !found {
		return ErrBookNotFound
	}

	found, err = service.repo.GenreExists(context, link.GenreID)
	if err != nil {
		return err
	}
	if !found {
		return ErrGenreNotFound
	}
	return nil
}

func nonEmpty(links []*Link, err error) ([]*Link, error) {
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNotFound
	}
	return links, nil
}
