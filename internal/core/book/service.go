// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/validate"
	"github.com/taibuivan/shelfwise/pkg/slice"
)

// # Service Layer

// Service enforces catalog rules (required fields, unique ISBN) around the
// transactional writes of the [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// FindByTitle returns the books whose title equals title.
func (service *Service) FindByTitle(context context.Context, title string) ([]*Book, error) {
	if err := (&validate.Validator{}).Required(FieldTitle, title).Err(); err != nil {
		return nil, err
	}

	books, err := service.repo.FindByTitle(context, title)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}

// Search returns books whose title, genre or author name contains keyword.
// An empty result is not an error.
func (service *Service) Search(context context.Context, keyword string) ([]*Book, error) {
	keyword = strings.TrimSpace(keyword)
	if err := (&validate.Validator{}).Required(FieldKeyword, keyword).Err(); err != nil {
		return nil, err
	}
	return service.repo.Search(context, keyword)
}

/*
CreateBook validates and stores a new book.

Description: Rejects a duplicate ISBN with a conflict before touching the
author and genre tables. The repository resolves names to rows and links the
genres inside one transaction.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Book: The stored book with author and genres resolved
  - error: Validation, conflict or storage failures
*/
func (service *Service) CreateBook(context context.Context, input Input) (*Book, error) {
	input = normalize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	taken, err := service.repo.ISBNTaken(context, input.ISBN, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateISBN
	}

	id, err := service.repo.CreateBook(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", id),
		slog.String("isbn", input.ISBN),
		slog.Int("genres", len(input.Genres)),
	)
	return service.repo.GetBook(context, id)
}

// UpdateBook replaces every field of the book. The genre set afterwards is
// exactly input.Genres.
func (service *Service) UpdateBook(context context.Context, id int, input Input) (*Book, error) {
	input = normalize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	taken, err := service.repo.ISBNTaken(context, input.ISBN, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateISBN
	}

	if err := service.repo.UpdateBook(context, id, input); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.Int("book_id", id))
	return service.repo.GetBook(context, id)
}

func (service *Service) DeleteBook(context context.Context, id int) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}
	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

// normalize trims surrounding whitespace; name matching stays exact otherwise.
func normalize(input Input) Input {
	input.Title = strings.TrimSpace(input.Title)
	input.ISBN = strings.TrimSpace(input.ISBN)
	input.AuthorFirstName = strings.TrimSpace(input.AuthorFirstName)
	input.AuthorLastName = strings.TrimSpace(input.AuthorLastName)

	input.Genres = slice.Map(input.Genres, strings.TrimSpace)
	return input
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 255).
		Required(FieldISBN, input.ISBN).ISBN(FieldISBN, input.ISBN).
		NonNegative(FieldPageCount, input.PageCount).
		Required(FieldFirstName, input.AuthorFirstName).
		Required(FieldLastName, input.AuthorLastName)

	for _, name := range input.Genres {
		if name == "" {
			validator.Custom(FieldGenres, true, "Genre names must not be empty")
			break
		}
	}
	return validator.Err()
}
