// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"

	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListProfiles(context context.Context) ([]*Profile, error) {
	return service.repo.ListProfiles(context)
}

func (service *Service) GetProfile(context context.Context, id int) (*Profile, error) {
	return service.repo.GetProfile(context, id)
}

func (service *Service) GetByUsername(context context.Context, username string) (*Profile, error) {
	return service.repo.GetByUsername(context, username)
}

func (service *Service) CreateProfile(context context.Context, input Input) (*Profile, error) {
	picture, err := decodePicture(input.Picture)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Bio: input.Bio, Picture: picture}
	if err := service.repo.CreateProfile(context, profile); err != nil {
		return nil, err
	}

	service.logger.Info("profile_created", slog.Int("profile_id", profile.ID))
	return profile, nil
}

/*
UpdateProfile changes the bio and picture of a profile. A field left nil keeps
its stored value, so a client can replace the picture without resending the bio.
*/
func (service *Service) UpdateProfile(context context.Context, id int, input Input) (*Profile, error) {
	picture, err := decodePicture(input.Picture)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateProfile(context, id, input.Bio, picture); err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated",
		slog.Int("profile_id", id),
		slog.Bool("bio_changed", input.Bio != nil),
		slog.Bool("picture_changed", picture != nil),
	)
	return service.repo.GetProfile(context, id)
}

// DeleteProfile fails with related-records while a user still owns the profile.
func (service *Service) DeleteProfile(context context.Context, id int) error {
	if err := service.repo.DeleteProfile(context, id); err != nil {
		return err
	}
	service.logger.Warn("profile_deleted", slog.Int("profile_id", id))
	return nil
}

func decodePicture(encoded *string) ([]byte, error) {
	if encoded == nil || *encoded == "" {
		return nil, nil
	}
	picture, err := image.Decode(*encoded)
	if err != nil {
		return nil, (&validate.Validator{}).Custom(FieldPicture, true, "Must be a base64 encoded image").Err()
	}
	return picture, nil
}
