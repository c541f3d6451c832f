// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

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

// bookRequest is the body of POST and PUT. The author is named, not referenced.
type bookRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	ISBN          string   `json:"isbn" validate:"required,max=20"`
	PageCount     int      `json:"page_count" validate:"gte=0"`
	Language      *string  `json:"language" validate:"omitempty,max=50"`
	DatePublished string   `json:"date_published" validate:"date"`
	Description   *string  `json:"description"`
	ImageID       *int     `json:"image_id" validate:"omitempty,gt=0"`
	FirstName     string   `json:"first_name" validate:"required,max=100"`
	LastName      string   `json:"last_name" validate:"required,max=100"`
	Genres        []string `json:"genres" validate:"dive,required,max=100"`
}

func (body bookRequest) input() (Input, error) {
	published, err := date.Parse(body.DatePublished)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Title:           body.Title,
		ISBN:            body.ISBN,
		PageCount:       body.PageCount,
		Language:        body.Language,
		DatePublished:   published,
		Description:     body.Description,
		ImageID:         body.ImageID,
		AuthorFirstName: body.FirstName,
		AuthorLastName:  body.LastName,
		Genres:          body.Genres,
	}, nil
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBooks)
	router.Get("/id/{id}", handler.getBook)
	router.Get("/title/{title}", handler.findByTitle)
	router.Get("/keyword/{keyword}", handler.search)
	router.Post("/", handler.createBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) findByTitle(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.FindByTitle(request.Context(), requestutil.Param(request, "title"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.Search(request.Context(), requestutil.Param(request, "keyword"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeBook(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeBook(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), bookID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func decodeBook(request *http.Request) (Input, error) {
	var body bookRequest
	if err := requestutil.DecodeValid(request, &body); err != nil {
		return Input{}, err
	}
	return body.input()
}
