// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
	"github.com/taibuivan/shelfwise/internal/users/session"
)

// # Service Layer

// Service orchestrates account management and sign-in.
type Service struct {
	repo     Repository
	sessions SessionStore
	tokens   TokenIssuer
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, sessions SessionStore, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{repo: repo, sessions: sessions, tokens: tokens, logger: logger}
}

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) ListProfiled(context context.Context) ([]*ProfiledUser, error) {
	return service.repo.ListProfiled(context)
}

func (service *Service) GetUser(context context.Context, id int) (*ProfiledUser, error) {
	return service.repo.GetUser(context, id)
}

func (service *Service) GetByUsername(context context.Context, username string) (*ProfiledUser, error) {
	return service.repo.GetByUsername(context, username)
}

// # Account Lifecycle

/*
CreateUser registers a new account with its profile.

Returns:
  - *ProfiledUser: The stored account
  - error: Validation, conflict (username in use) or storage failures
*/
func (service *Service) CreateUser(context context.Context, input Input) (*ProfiledUser, error) {
	input = normalize(input)
	validator := validateInput(input)
	validator.Required(FieldPassword, input.Password)
	if input.Password != "" {
		validator.Password(FieldPassword, input.Password)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureUsernameFree(context, input.Username, 0); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := toUser(input)
	user.PasswordHash = hash
	if err := service.repo.CreateUser(context, user, input.Bio); err != nil {
		return nil, err
	}

	service.logger.Info("user_created",
		slog.Int("user_id", user.ID),
		slog.Int("profile_id", user.ProfileID),
	)
	return service.repo.GetUser(context, user.ID)
}

/*
UpdateUser replaces the account fields. The password is rehashed only when a
new one is supplied.
*/
func (service *Service) UpdateUser(context context.Context, id int, input Input) (*ProfiledUser, error) {
	input = normalize(input)
	validator := validateInput(input)
	if input.Password != "" {
		validator.Password(FieldPassword, input.Password)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	current, err := service.repo.GetUser(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.ensureUsernameFree(context, input.Username, id); err != nil {
		return nil, err
	}

	user := toUser(input)
	user.ID = id
	user.ProfileID = current.ProfileID
	user.PasswordHash = current.PasswordHash
	if input.Password != "" {
		if user.PasswordHash, err = hashPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if err := service.repo.UpdateUser(context, user, input.Bio); err != nil {
		return nil, err
	}

	service.logger.Info("user_updated",
		slog.Int("user_id", id),
		slog.Bool("password_changed", input.Password != ""),
	)
	return service.repo.GetUser(context, id)
}

// DeleteUser removes the account with everything it owns and signs it out.
func (service *Service) DeleteUser(context context.Context, id int) error {
	if err := service.repo.DeleteUser(context, id); err != nil {
		return err
	}

	// The account is gone either way; a stale session fails its next lookup.
	if err := service.sessions.DeleteForUser(context, id); err != nil {
		service.logger.Error("user_sessions_revoke_failed",
			slog.Int("user_id", id),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Warn("user_deleted", slog.Int("user_id", id))
	return nil
}

// # Sign-in

/*
SignIn checks the credentials and opens a session on success.

Description: An unknown username and a wrong password produce the same
unsuccessful result. Only storage failures are returned as errors.
*/
func (service *Service) SignIn(context context.Context, username, password string) (*SignInResult, error) {
	user, err := service.repo.GetByUsername(context, strings.TrimSpace(username))
	if errors.Is(err, ErrNotFound) {
		return &SignInResult{Message: msgInvalidCredentials}, nil
	}
	if err != nil {
		return nil, err
	}

	if !sec.VerifyPassword(user.PasswordHash, password) {
		service.logger.Info("sign_in_rejected", slog.Int("user_id", user.ID))
		return &SignInResult{Message: msgInvalidCredentials}, nil
	}

	snapshot := user.Snapshot()
	created, err := service.sessions.Create(context, snapshot)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	token, err := service.tokens.GenerateSessionToken(created.ID, user.ID, user.Username, service.sessions.TTL())
	if err != nil {
		_ = service.sessions.Delete(context, created.ID)
		return nil, apperr.Internal(err)
	}

	service.logger.Info("user_signed_in", slog.Int("user_id", user.ID))
	return &SignInResult{Success: true, Message: msgSignedIn, Token: token, User: &snapshot}, nil
}

// SignOut ends the session. Ending an expired session succeeds.
func (service *Service) SignOut(context context.Context, sessionID string) error {
	if err := service.sessions.Delete(context, sessionID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Current returns the signed-in user of a session and slides its expiry.
func (service *Service) Current(context context.Context, sessionID string) (*session.User, error) {
	current, err := service.sessions.Get(context, sessionID)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	if err := service.sessions.Refresh(context, sessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return nil, apperr.Internal(err)
	}
	return &current.User, nil
}

// SyncSession rewrites the snapshot held by a session after its user changed.
func (service *Service) SyncSession(context context.Context, sessionID string, user *ProfiledUser) {
	if err := service.sessions.Replace(context, sessionID, user.Snapshot()); err != nil && !errors.Is(err, session.ErrNotFound) {
		service.logger.Error("session_sync_failed",
			slog.Int("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (service *Service) ensureUsernameFree(context context.Context, username string, excludeID int) error {
	taken, err := service.repo.UsernameTaken(context, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict(fmt.Sprintf("Username %q is already taken", username))
	}
	return nil
}

func normalize(input Input) Input {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	return input
}

func validateInput(input Input) *validate.Validator {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).
		MaxLen(FieldFirstName, input.FirstName, 100).
		Required(FieldLastName, input.LastName).
		MaxLen(FieldLastName, input.LastName, 100).
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 50).
		Required(FieldEmail, input.Email).
		NonNegative(FieldReadingGoal, input.ReadingGoal)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	return validator
}

func toUser(input Input) *User {
	return &User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Username:    input.Username,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		ReadingGoal: input.ReadingGoal,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := sec.HashPassword(password)
	if errors.Is(err, sec.ErrPasswordTooLong) {
		return "", apperr.ValidationError("Invalid password",
			apperr.FieldError{Field: FieldPassword, Message: "Password must be at most 72 bytes"})
	}
	if err != nil {
		return "", apperr.Internal(err)
	}
	return hash, nil
}
