// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

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

// profileRequest is shared by create and update; omitted fields stay untouched.
type profileRequest struct {
	Bio     *string `json:"bio"`
	Picture *string `json:"picture"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listProfiles)
	router.Get("/{id}", handler.getProfile)
	router.Get("/username/{username}", handler.getByUsername)
	router.Post("/", handler.createProfile)
	router.Put("/{id}", handler.updateProfile)
	router.Delete("/{id}", handler.deleteProfile)
}

func (handler *Handler) listProfiles(writer http.ResponseWriter, request *http.Request) {
	profiles, err := handler.service.ListProfiles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profiles)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	profileID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), profileID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) getByUsername(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetByUsername(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) createProfile(writer http.ResponseWriter, request *http.Request) {
	var input profileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.CreateProfile(request.Context(), Input{Bio: input.Bio, Picture: input.Picture})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, profile)
}

func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	profileID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input profileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.UpdateProfile(request.Context(), profileID, Input{Bio: input.Bio, Picture: input.Picture})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) deleteProfile(writer http.ResponseWriter, request *http.Request) {
	profileID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProfile(request.Context(), profileID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
