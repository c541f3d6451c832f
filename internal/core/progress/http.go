// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/shelfwise/internal/platform/request"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
	"github.com/taibuivan/shelfwise/pkg/date"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type stateRequest struct {
	Status      string `json:"status" validate:"required,oneof=read unread reading"`
	CurrentPage int    `json:"current_page" validate:"gte=0"`
	StartDate   string `json:"start_date" validate:"date"`
	EndDate     string `json:"end_date" validate:"date"`
}

func (body stateRequest) input() (UpdateInput, error) {
	start, err := date.Parse(body.StartDate)
	if err != nil {
		return UpdateInput{}, err
	}
	end, err := date.Parse(body.EndDate)
	if err != nil {
		return UpdateInput{}, err
	}
	return UpdateInput{
		Status:      Status(body.Status),
		CurrentPage: body.CurrentPage,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

type createRequest struct {
	stateRequest
	Username string `json:"username" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listEntries)
	router.Get("/id/{id}", handler.getEntry)
	router.Get("/user/{userID}", handler.listByUser)
	router.Get("/user/{userID}/book/{bookID}", handler.getUserBook)
	router.Get("/reading/{userID}", handler.listReading)
	router.Get("/total/{userID}", handler.totalBooks)
	router.Get("/totalRead/{userID}", handler.totalRead)
	router.Get("/mostReadAuthor/{userID}", handler.mostReadAuthor)
	router.Get("/mostReadGenre/{userID}", handler.mostReadGenre)
	router.Get("/RecommendationByMostReadAuthor/{userID}", handler.recommendByAuthor)
	router.Get("/RecommendationByMostReadGenre/{userID}", handler.recommendByGenre)
	router.Post("/", handler.createEntry)
	router.Put("/{id}", handler.updateEntry)
	router.Delete("/{id}", handler.deleteEntry)
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListEntries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) getEntry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.GetEntry(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) getUserBook(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	bookID, err := requestutil.ID(request, "bookID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetUserBook(request.Context(), userID, bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) listReading(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.ListReading(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) totalBooks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	total, err := handler.service.TotalBooks(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, total)
}

func (handler *Handler) totalRead(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	total, err := handler.service.TotalRead(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, total)
}

func (handler *Handler) mostReadAuthor(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.MostReadAuthor(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorite)
}

func (handler *Handler) mostReadGenre(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.MostReadGenre(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorite)
}

func (handler *Handler) recommendByAuthor(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.RecommendByAuthor(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) recommendByGenre(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "userID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.RecommendByGenre(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) createEntry(writer http.ResponseWriter, request *http.Request) {
	var body createRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := body.input()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.CreateEntry(request.Context(), CreateInput{
		Username:    body.Username,
		Title:       body.Title,
		Status:      state.Status,
		CurrentPage: state.CurrentPage,
		StartDate:   state.StartDate,
		EndDate:     state.EndDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entry)
}

func (handler *Handler) updateEntry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body stateRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := body.input()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.UpdateEntry(request.Context(), id, state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) deleteEntry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEntry(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
