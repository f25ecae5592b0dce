package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password
	// alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidToken = errors.New("invalid or expired token")
)

// HTTPStatus maps domain errors to HTTP status codes
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
