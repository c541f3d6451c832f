// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the single error type that crosses the service boundary.

Services return (value, error). A known failure is an [*AppError] whose Code
and HTTPStatus decide the response; anything else is treated as internal and
rendered as a generic 500 by the respond package.

Kinds:

  - VALIDATION_ERROR (400), with per-field [FieldError] details
  - NOT_FOUND (404)
  - CONFLICT (409) for duplicate natural keys
  - RELATED_RECORDS_EXIST (400) for deletes blocked by dependent rows
  - UNAUTHORIZED (401), RATE_LIMITED (429), INTERNAL_ERROR (500)
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeConflict       = "CONFLICT"
	CodeValidation     = "VALIDATION_ERROR"
	CodeRelatedRecords = "RELATED_RECORDS_EXIST"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError carries a client-safe message. Cause is logged, never rendered.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError names the JSON field that failed a rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # Client Errors (4xx)

// NotFound reports a missing row, e.g. NotFound("Book") reads "Book not found".
func NotFound(resource string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, resource+" not found")
}

// NotFoundMessage is [NotFound] for lookups where the natural key belongs in the message.
func NotFoundMessage(msg string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, msg)
}

func Conflict(msg string) *AppError {
	return newError(CodeConflict, http.StatusConflict, msg)
}

func ValidationError(msg string, details ...FieldError) *AppError {
	ae := newError(CodeValidation, http.StatusBadRequest, msg)
	ae.Details = details
	return ae
}

// RelatedRecords reports a delete refused because other rows still point at the target.
func RelatedRecords(msg string) *AppError {
	return newError(CodeRelatedRecords, http.StatusBadRequest, msg)
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError(CodeRateLimited, http.StatusTooManyRequests,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// # Server Errors (5xx)

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	ae := newError(CodeInternal, http.StatusInternalServerError, "An unexpected error occurred")
	ae.Cause = cause
	return ae
}

// # Helpers

func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

func IsAppError(err error) bool {
	return As(err) != nil
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
