// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"context"
	"errors"
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

// UploadInput carries base64 payloads as received over JSON.
type UploadInput struct {
	Front string
	Side  string
}

func (service *Service) ListImages(context context.Context) ([]*Image, error) {
	return service.repo.ListImages(context)
}

func (service *Service) GetImage(context context.Context, id int) (*Image, error) {
	return service.repo.GetImage(context, id)
}

// CreateImage decodes and stores an upload. The side picture is optional.
func (service *Service) CreateImage(context context.Context, input UploadInput) (*Image, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFront, input.Front)

	image := &Image{}
	if input.Front != "" {
		front, err := Decode(input.Front)
		validator.Custom(FieldFront, err != nil, decodeMessage(err))
		image.Front = front
	}
	if input.Side != "" {
		side, err := Decode(input.Side)
		validator.Custom(FieldSide, err != nil, decodeMessage(err))
		image.Side = side
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateImage(context, image); err != nil {
		return nil, err
	}

	service.logger.Info("image_created",
		slog.Int("image_id", image.ID),
		slog.Int("front_bytes", len(image.Front)),
		slog.Int("side_bytes", len(image.Side)),
	)
	return image, nil
}

// DeleteImage removes the image; books pointing at it keep a null image.
func (service *Service) DeleteImage(context context.Context, id int) error {
	if err := service.repo.DeleteImage(context, id); err != nil {
		return err
	}
	service.logger.Warn("image_deleted", slog.Int("image_id", id))
	return nil
}

func decodeMessage(err error) string {
	if errors.Is(err, errNotImage) {
		return "Must be an image"
	}
	return "Must be base64 encoded"
}
