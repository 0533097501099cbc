package server

import (
	"errors"
	"net/http"

	"github.com/UnknownOlympus/employee-api/internal/repository"
)

const internalErrorMessage = "internal server error"

// errorResponse is the body of every failed API response.
type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// statusFromError maps a domain error to its HTTP status and the error kind used for metrics.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, repository.ErrEmployeeAlreadyExists):
		return http.StatusConflict, "already_exists"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{ErrorMessage: message})
}
