// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookshelf

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

type createRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	View     string `json:"view" validate:"required,oneof=public private"`
}

type updateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	View string `json:"view" validate:"required,oneof=public private"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listShelves)
	router.Get("/id/{id}", handler.getShelf)
	router.Get("/username/{username}", handler.listByUsername)
	router.Get("/view/{view}", handler.listByView)
	router.Get("/name/{name}", handler.listByName)
	router.Post("/", handler.createShelf)
	router.Put("/{id}", handler.updateShelf)
	router.Delete("/{id}", handler.deleteShelf)
}

func (handler *Handler) listShelves(writer http.ResponseWriter, request *http.Request) {
	shelves, err := handler.service.ListShelves(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelves)
}

func (handler *Handler) getShelf(writer http.ResponseWriter, request *http.Request) {
	shelfID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	shelf, err := handler.service.GetShelf(request.Context(), shelfID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelf)
}

func (handler *Handler) listByUsername(writer http.ResponseWriter, request *http.Request) {
	shelves, err := handler.service.ListByUsername(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelves)
}

func (handler *Handler) listByView(writer http.ResponseWriter, request *http.Request) {
	shelves, err := handler.service.ListByView(request.Context(), View(requestutil.Param(request, "view")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelves)
}

func (handler *Handler) listByName(writer http.ResponseWriter, request *http.Request) {
	shelves, err := handler.service.ListByName(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelves)
}

func (handler *Handler) createShelf(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shelf, err := handler.service.CreateShelf(request.Context(), input.Username, input.Name, View(input.View))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, shelf)
}

func (handler *Handler) updateShelf(writer http.ResponseWriter, request *http.Request) {
	shelfID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shelf, err := handler.service.UpdateShelf(request.Context(), shelfID, input.Name, View(input.View))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shelf)
}

func (handler *Handler) deleteShelf(writer http.ResponseWriter, request *http.Request) {
	shelfID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteShelf(request.Context(), shelfID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
