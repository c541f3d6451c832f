// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shelfbook

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListPlacements(context context.Context) ([]*Placement, error) {
	return service.repo.ListPlacements(context)
}

// ListByShelf returns the books on a shelf; an empty shelf is not found.
func (service *Service) ListByShelf(context context.Context, bookshelfID int) ([]*Placement, error) {
	placements, err := service.repo.ListByShelf(context, bookshelfID)
	if err != nil {
		return nil, err
	}
	if len(placements) == 0 {
		return nil, ErrNotFound
	}
	return placements, nil
}

// AddBook puts an existing book on an existing shelf.
func (service *Service) AddBook(context context.Context, placement Placement) error {
	placement = placement.key()
	if err := service.ensureExists(context, placement); err != nil {
		return err
	}

	if err := service.repo.CreatePlacement(context, placement); err != nil {
		return err
	}

	service.logger.Info("bookshelf_book_added",
		slog.Int("bookshelf_id", placement.BookshelfID),
		slog.Int("book_id", placement.BookID),
	)
	return nil
}

// MoveBook replaces the (from) placement with (to).
func (service *Service) MoveBook(context context.Context, from, to Placement) error {
	to = to.key()
	if err := service.ensureExists(context, to); err != nil {
		return err
	}

	if err := service.repo.MovePlacement(context, from.key(), to); err != nil {
		return err
	}

	service.logger.Info("bookshelf_book_moved",
		slog.Int("from_bookshelf_id", from.BookshelfID),
		slog.Int("bookshelf_id", to.BookshelfID),
		slog.Int("book_id", to.BookID),
	)
	return nil
}

func (service *Service) RemoveBook(context context.Context, placement Placement) error {
	if err := service.repo.DeletePlacement(context, placement.key()); err != nil {
		return err
	}
	service.logger.Info("bookshelf_book_removed",
		slog.Int("bookshelf_id", placement.BookshelfID),
		slog.Int("book_id", placement.BookID),
	)
	return nil
}

func (service *Service) ensureExists(context context.Context, placement Placement) error {
	if found, err := service.repo.BookExists(context, placement.BookID); err != nil {
		return err
	} else if !found {
		return ErrBookNotFound
	}

	if found, err := service.repo.ShelfExists(context, placement.BookshelfID); err != nil {
		return err
	} else if !found {
		return ErrShelfNotFound
	}
	return nil
}
