// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

// # Service Layer

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListEntries(context context.Context) ([]*Entry, error) {
	return service.repo.ListEntries(context)
}

func (service *Service) GetEntry(context context.Context, id int) (*Entry, error) {
	return service.repo.GetEntry(context, id)
}

// ListByUser returns the user's collection; an empty collection is not an error.
func (service *Service) ListByUser(context context.Context, userID int) ([]*Entry, error) {
	return service.repo.ListByUser(context, userID)
}

func (service *Service) GetUserBook(context context.Context, userID, bookID int) (*ReadingBook, error) {
	book, err := service.repo.GetUserBook(context, userID, bookID)
	if err != nil {
		return nil, err
	}
	book.Percentage = Percentage(book.CurrentPage, book.PageCount)
	return book, nil
}

// ListReading returns the books the user is currently reading with their progress.
func (service *Service) ListReading(context context.Context, userID int) ([]*ReadingBook, error) {
	books, err := service.repo.ListReading(context, userID)
	if err != nil {
		return nil, err
	}
	for _, book := range books {
		book.Percentage = Percentage(book.CurrentPage, book.PageCount)
	}
	return books, nil
}

func (service *Service) TotalBooks(context context.Context, userID int) (*Total, error) {
	total, err := service.repo.CountBooks(context, userID)
	if err != nil {
		return nil, err
	}
	return &Total{UserID: userID, Total: total}, nil
}

func (service *Service) TotalRead(context context.Context, userID int) (*Total, error) {
	total, err := service.repo.CountRead(context, userID)
	if err != nil {
		return nil, err
	}
	return &Total{UserID: userID, Total: total}, nil
}

// # Recommendations

func (service *Service) MostReadAuthor(context context.Context, userID int) (*FavoriteAuthor, error) {
	favorite, count, err := service.repo.MostReadAuthor(context, userID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return &FavoriteAuthor{}, nil
	}
	return &FavoriteAuthor{Found: true, Author: favorite, ReadCount: count}, nil
}

func (service *Service) MostReadGenre(context context.Context, userID int) (*FavoriteGenre, error) {
	favorite, count, err := service.repo.MostReadGenre(context, userID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return &FavoriteGenre{}, nil
	}
	return &FavoriteGenre{Found: true, Genre: favorite, ReadCount: count}, nil
}

/*
RecommendByAuthor lists the unfinished books of the user's most-read author.

Description: A user who has finished nothing has no favorite; the result is
then empty rather than an error.

Returns:
  - []*Recommendation: Books never started or not yet marked read
  - error: Storage failures only
*/
func (service *Service) RecommendByAuthor(context context.Context, userID int) ([]*Recommendation, error) {
	favorite, _, err := service.repo.MostReadAuthor(context, userID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return []*Recommendation{}, nil
	}
	return service.repo.UnreadByAuthor(context, userID, favorite.ID)
}

// RecommendByGenre lists the unfinished books of the user's most-read genre.
func (service *Service) RecommendByGenre(context context.Context, userID int) ([]*Recommendation, error) {
	favorite, _, err := service.repo.MostReadGenre(context, userID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return []*Recommendation{}, nil
	}
	return service.repo.UnreadByGenre(context, userID, favorite.ID)
}

// # Writes

/*
CreateEntry adds a book to a user's collection.

Description: The user and the book are looked up by username and exact
title. A pair that is already tracked is reported as a conflict and left
unchanged.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Entry: The stored entry
  - error: Validation, not-found (unknown user or title), conflict or storage failures
*/
func (service *Service) CreateEntry(context context.Context, input CreateInput) (*Entry, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Title = strings.TrimSpace(input.Title)

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		Required(FieldTitle, input.Title)
	validateState(validator, UpdateInput{
		Status:      input.Status,
		CurrentPage: input.CurrentPage,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	})
	if err := validator.Err(); err != nil {
		return nil, err
	}

	userID, found, err := service.repo.FindUserID(context, input.Username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFoundMessage(fmt.Sprintf("User with username %q does not exist", input.Username))
	}

	bookID, found, err := service.repo.FindBookID(context, input.Title)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFoundMessage(fmt.Sprintf("Book with title %q does not exist", input.Title))
	}

	tracked, err := service.repo.EntryExists(context, userID, bookID)
	if err != nil {
		return nil, err
	}
	if tracked {
		return nil, apperr.Conflict(fmt.Sprintf("The book %q is already in the user's collection", input.Title))
	}

	entry := &Entry{
		UserID:      userID,
		BookID:      bookID,
		Title:       input.Title,
		Status:      input.Status,
		CurrentPage: input.CurrentPage,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := service.repo.CreateEntry(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("book_by_user_created",
		slog.Int("id", entry.ID),
		slog.Int("user_id", userID),
		slog.Int("book_id", bookID),
		slog.String("status", string(entry.Status)),
	)
	return entry, nil
}

func (service *Service) UpdateEntry(context context.Context, id int, input UpdateInput) (*Entry, error) {
	validator := &validate.Validator{}
	if err := validateState(validator, input).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateEntry(context, id, input); err != nil {
		return nil, err
	}

	service.logger.Info("book_by_user_updated",
		slog.Int("id", id),
		slog.String("status", string(input.Status)),
		slog.Int("current_page", input.CurrentPage),
	)
	return service.repo.GetEntry(context, id)
}

func (service *Service) DeleteEntry(context context.Context, id int) error {
	if err := service.repo.DeleteEntry(context, id); err != nil {
		return err
	}
	service.logger.Info("book_by_user_deleted", slog.Int("id", id))
	return nil
}

func validateState(validator *validate.Validator, input UpdateInput) *validate.Validator {
	validator.
		OneOf(FieldStatus, string(input.Status), Statuses...).
		NonNegative(FieldCurrentPage, input.CurrentPage)

	if input.StartDate != nil && input.EndDate != nil {
		validator.Custom(FieldEndDate, input.EndDate.Before(input.StartDate.Time), "Must not be before start_date")
	}
	return validator
}
