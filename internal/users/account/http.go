// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/middleware"
	requestutil "github.com/taibuivan/shelfwise/internal/platform/request"
	"github.com/taibuivan/shelfwise/internal/platform/respond"
)

// Handler implements the HTTP layer for accounts and sign-in.
type Handler struct {
	service       *Service
	secureCookies bool
}

// NewHandler constructs a new account [Handler]. secureCookies marks the
// session cookie HTTPS-only.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// # Request Payloads

type createRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	Username    string  `json:"username" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Bio         *string `json:"bio"`
	ReadingGoal int     `json:"reading_goal" validate:"gte=0"`
}

type updateRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	Username    string  `json:"username" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Bio         *string `json:"bio"`
	ReadingGoal int     `json:"reading_goal" validate:"gte=0"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listUsers)
	router.Get("/profiles", handler.listProfiled)
	router.Get("/id/{id}", handler.getUser)
	router.Get("/username/{username}", handler.getByUsername)
	router.Post("/", handler.createUser)
	router.Put("/{id}", handler.updateUser)
	router.Delete("/{id}", handler.deleteUser)

	router.Post("/login", handler.signIn)

	// Session endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.signOut)
		r.Get("/me", handler.me)
	})
}

// # Account Endpoints

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) listProfiled(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListProfiled(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) getByUsername(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.GetByUsername(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
POST /api/users.

Response:
  - 201: ProfiledUser: The new account
  - 400: Validation failure
  - 409: Username already taken
*/
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.CreateUser(request.Context(), Input(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, user)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), userID, Input(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if claims := requestutil.Claims(request); claims != nil && claims.UserID == userID {
		handler.service.SyncSession(request.Context(), claims.SessionID(), user)
	}
	respond.OK(writer, user)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteUser(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Session Endpoints

/*
POST /api/users/login.

Description: Checks the credentials and, on success, sets the session cookie.

Response:
  - 200: SignInResult with success true, the token and the user
  - 401: SignInResult with success false
*/
func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var input signInRequest
	if err := requestutil.DecodeValid(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SignIn(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !result.Success {
		respond.JSON(writer, http.StatusUnauthorized, result)
		return
	}

	handler.setCookie(writer, result.Token, handler.service.sessions.TTL())
	respond.OK(writer, result)
}

func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SignOut(request.Context(), claims.SessionID()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setCookie(writer, "", -1)
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Current(request.Context(), claims.SessionID())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

// setCookie writes the session cookie; a negative ttl clears it.
func (handler *Handler) setCookie(writer http.ResponseWriter, token string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(ttl / time.Second)
	}
	http.SetCookie(writer, cookie)
}
