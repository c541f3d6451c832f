// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/shelfwise/internal/platform/request"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type uploadRequest struct {
	Front string `json:"image_front" validate:"required"`
	Side  string `json:"image_side"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listImages)
	router.Get("/{id}", handler.getImage)
	router.Post("/", handler.createImage)
	router.Delete("/{id}", handler.deleteImage)
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	images, err := handler.service.ListImages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) getImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.GetImage(request.Context(), imageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	var input uploadRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.CreateImage(request.Context(), UploadInput{Front: input.Front, Side: input.Side})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, image)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteImage(request.Context(), imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
