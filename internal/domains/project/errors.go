package project

import (
	"errors"
	"net/http"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// HTTPStatus maps domain errors to HTTP status codes
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
