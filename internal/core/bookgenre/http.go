// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookgenre

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

type linkRequest struct {
	BookID  int `json:"book_id" validate:"required,gt=0"`
	GenreID int `json:"genre_id" validate:"required,gt=0"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLinks)
	router.Get("/book/{id}", handler.listByBook)
	router.Get("/genre/{id}", handler.listByGenre)
	router.Post("/", handler.createLink)
	router.Put("/{bookID}/{genreID}", handler.moveLink)
	router.Delete("/{bookID}/{genreID}", handler.deleteLink)
}

func (handler *Handler) listLinks(writer http.ResponseWriter, request *http.Request) {
	links, err := handler.service.ListLinks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

func (handler *Handler) listByBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links, err := handler.service.ListByBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

func (handler *Handler) listByGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links, err := handler.service.ListByGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

func (handler *Handler) createLink(writer http.ResponseWriter, request *http.Request) {
	var input linkRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link := Link{BookID: input.BookID, GenreID: input.GenreID}
	if err := handler.service.CreateLink(request.Context(), link); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, link)
}

func (handler *Handler) moveLink(writer http.ResponseWriter, request *http.Request) {
	from, err := pathLink(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input linkRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	to := Link{BookID: input.BookID, GenreID: input.GenreID}
	if err := handler.service.MoveLink(request.Context(), from, to); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, to)
}

func (handler *Handler) deleteLink(writer http.ResponseWriter, request *http.Request) {
	link, err := pathLink(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLink(request.Context(), link); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pathLink(request *http.Request) (Link, error) {
	bookID, err := requestutil.ID(request, "bookID")
	if err != nil {
		return Link{}, err
	}
	genreID, err := requestutil.ID(request, "genreID")
	if err != nil {
		return Link{}, err
	}
	return Link{BookID: bookID, GenreID: genreID}, nil
}
