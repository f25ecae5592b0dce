package auth

import "context"

// Service is the session issuer/validator contract
type Service interface {
	// Login verifies credentials and issues a signed session token
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Validate recovers the identity from a session token.
	// Returns ErrInvalidToken for anything not issued here or expired.
	Validate(ctx context.Context, token string) (*Identity, error)
}
