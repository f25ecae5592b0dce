package message

import (
	"errors"
	"net/http"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

// HTTPStatus maps domain errors to HTTP status codes
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
