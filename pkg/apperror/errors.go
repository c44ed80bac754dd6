package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// AppError carries an HTTP status alongside the message so handlers can
// map service failures without inspecting error strings.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewNotFoundError reports a missing single-resource lookup.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewBadRequestError reports a malformed or invalid request value.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// StatusCode resolves the HTTP status for an error. gorm.ErrRecordNotFound
// maps to 404; anything unclassified is a generic persistence failure.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
