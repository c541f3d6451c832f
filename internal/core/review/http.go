// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/shelfwise/internal/platform/request"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
	"github.com/taibuivan/shelfwise/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// reviewRequest rejects out-of-range ratings before the service is called.
type reviewRequest struct {
	BookID      int    `json:"book_id" validate:"omitempty,gt=0"`
	Title       string `json:"title" validate:"required_without=BookID,max=255"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
}

func (body reviewRequest) input() Input {
	return Input{
		BookID:      body.BookID,
		BookTitle:   body.Title,
		Rating:      body.Rating,
		Description: body.Description,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listReviews)
	router.Get("/id/{id}", handler.getReview)
	router.Get("/title/{title}", handler.findByTitle)
	router.Get("/rating/{rating}", handler.findByRating)
	router.Post("/", handler.createReview)
	router.Put("/{id}", handler.updateReview)
	router.Delete("/{id}", handler.deleteReview)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.ListReviews(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.GetReview(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) findByTitle(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.FindByTitle(request.Context(), requestutil.Param(request, "title"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) findByRating(writer http.ResponseWriter, request *http.Request) {
	rating, err := strconv.Atoi(requestutil.Param(request, "rating"))
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldRating, "Must be an integer"))
		return
	}

	reviews, err := handler.service.FindByRating(request.Context(), rating)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	var body reviewRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.CreateReview(request.Context(), body.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, review)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body reviewRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.UpdateReview(request.Context(), reviewID, body.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReview(request.Context(), reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
