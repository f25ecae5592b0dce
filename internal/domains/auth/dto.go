package auth

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest is the credential pair submitted by the login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the session token for client-side storage.
// There is no refresh token: expiry is absolute from issuance.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Identity  `json:"user"`
}
