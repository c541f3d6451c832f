// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListShelves(context context.Context) ([]*Bookshelf, error) {
	return service.repo.ListShelves(context)
}

func (service *Service) GetShelf(context context.Context, id int) (*Bookshelf, error) {
	return service.repo.GetShelf(context, id)
}

func (service *Service) ListByUsername(context context.Context, username string) ([]*Bookshelf, error) {
	return nonEmpty(service.repo.ListByUsername(context, username))
}

func (service *Service) ListByView(context context.Context, view View) ([]*Bookshelf, error) {
	if err := (&validate.Validator{}).OneOf(FieldView, string(view), Views...).Err(); err != nil {
		return nil, err
	}
	return nonEmpty(service.repo.ListByView(context, view))
}

func (service *Service) ListByName(context context.Context, name string) ([]*Bookshelf, error) {
	return nonEmpty(service.repo.ListByName(context, name))
}

/*
CreateShelf creates a bookshelf for the named user.

Returns:
  - *Bookshelf: The stored shelf
  - error: Validation, conflict (name in use), not-found (unknown user) or storage failures
*/
func (service *Service) CreateShelf(context context.Context, username, name string, view View) (*Bookshelf, error) {
	username, name = strings.TrimSpace(username), strings.TrimSpace(name)

	err := validateShelf(name, view).Required(FieldUsername, username).Err()
	if err != nil {
		return nil, err
	}

	taken, err := service.repo.NameTaken(context, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	userID, found, err := service.repo.FindUserID(context, username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFoundMessage(fmt.Sprintf("User with username %q not found", username))
	}

	shelf := &Bookshelf{UserID: userID, Username: username, Name: name, View: view}
	if err := service.repo.CreateShelf(context, shelf); err != nil {
		return nil, err
	}

	service.logger.Info("bookshelf_created",
		slog.Int("bookshelf_id", shelf.ID),
		slog.Int("user_id", userID),
		slog.String("view", string(view)),
	)
	return shelf, nil
}

// UpdateShelf renames the shelf and changes its visibility.
func (service *Service) UpdateShelf(context context.Context, id int, name string, view View) (*Bookshelf, error) {
	name = strings.TrimSpace(name)
	if err := validateShelf(name, view).Err(); err != nil {
		return nil, err
	}

	taken, err := service.repo.NameTaken(context, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	if err := service.repo.UpdateShelf(context, id, name, view); err != nil {
		return nil, err
	}

	service.logger.Info("bookshelf_updated", slog.Int("bookshelf_id", id))
	return service.repo.GetShelf(context, id)
}

func (service *Service) DeleteShelf(context context.Context, id int) error {
	if err := service.repo.DeleteShelf(context, id); err != nil {
		return err
	}
	service.logger.Warn("bookshelf_deleted", slog.Int("bookshelf_id", id))
	return nil
}

func validateShelf(name string, view View) *validate.Validator {
	return (&validate.Validator{}).
		Required(FieldName, name).
		MaxLen(FieldName, name, 100).
		OneOf(FieldView, string(view), Views...)
}

func nonEmpty(shelves []*Bookshelf, err error) ([]*Bookshelf, error) {
	if err != nil {
		return nil, err
	}
	if len(shelves) == 0 {
		return nil, ErrNotFound
	}
	return shelves, nil
}
