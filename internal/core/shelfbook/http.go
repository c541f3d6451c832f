// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shelfbook

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

type placementRequest struct {
	BookID      int `json:"book_id" validate:"required,gt=0"`
	BookshelfID int `json:"bookshelf_id" validate:"required,gt=0"`
}

func (body placementRequest) placement() Placement {
	return Placement{BookshelfID: body.BookshelfID, BookID: body.BookID}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPlacements)
	router.Get("/bookshelf/{id}", handler.listByShelf)
	router.Post("/", handler.addBook)
	router.Put("/{bookID}/{bookshelfID}", handler.moveBook)
	router.Delete("/{bookID}/{bookshelfID}", handler.removeBook)
}

func (handler *Handler) listPlacements(writer http.ResponseWriter, request *http.Request) {
	placements, err := handler.service.ListPlacements(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, placements)
}

func (handler *Handler) listByShelf(writer http.ResponseWriter, request *http.Request) {
	shelfID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	placements, err := handler.service.ListByShelf(request.Context(), shelfID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, placements)
}

func (handler *Handler) addBook(writer http.ResponseWriter, request *http.Request) {
	var body placementRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddBook(request.Context(), body.placement()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, body.placement())
}

func (handler *Handler) moveBook(writer http.ResponseWriter, request *http.Request) {
	from, err := pathPlacement(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body placementRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.MoveBook(request.Context(), from, body.placement()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, body.placement())
}

func (handler *Handler) removeBook(writer http.ResponseWriter, request *http.Request) {
	placement, err := pathPlacement(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveBook(request.Context(), placement); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pathPlacement(request *http.Request) (Placement, error) {
	bookID, err := requestutil.ID(request, "bookID")
	if err != nil {
		return Placement{}, err
	}
	shelfID, err := requestutil.ID(request, "bookshelfID")
	if err != nil {
		return Placement{}, err
	}
	return Placement{BookshelfID: shelfID, BookID: bookID}, nil
}
