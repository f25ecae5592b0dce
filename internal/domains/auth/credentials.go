package auth

import (
	"crypto/subtle"

	"portfolio-backend/internal/config"
)

// CredentialStore verifies a submitted credential pair and returns
// the matching identity. The interface exists so a real user store
// can replace the config-backed one without touching the service.
type CredentialStore interface {
	// Verify returns ErrInvalidCredentials on any mismatch.
	Verify(email, password string) (*Identity, error)
}

// envCredentialStore holds the single admin identity read from
// process configuration. No mutation, no lifecycle beyond the
// process lifetime.
type envCredentialStore struct {
	email    string
	password string
	identity Identity
}

func NewEnvCredentialStore(cfg config.AdminConfig) CredentialStore {
	return &envCredentialStore{
		email:    cfg.Email,
		password: cfg.Password,
		identity: Identity{
			ID:    "1",
			Email: cfg.Email,
			Name:  cfg.Name,
			Role:  RoleAdmin,
		},
	}
}

func (s *envCredentialStore) Verify(email, password string) (*Identity, error) {
	// Compare both fields before deciding so timing does not reveal
	// which one was wrong.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))

	if emailOK&passwordOK != 1 {
		return nil, ErrInvalidCredentials
	}

	identity := s.identity
	return &identity, nil
}
