package service

import (
	"context"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

type authService struct {
	credentials auth.CredentialStore
	jwtManager  *jwt.Manager
}

// NewAuthService wires the credential store to the token manager
func NewAuthService(credentials auth.CredentialStore, jwtManager *jwt.Manager) auth.Service {
	return &authService{
		credentials: credentials,
		jwtManager:  jwtManager,
	}
}

// Login verifies the submitted pair and issues a session token.
// Nothing is persisted; the token is the only session state.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	identity, err := s.credentials.Verify(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwtManager.Generate(identity.ID, identity.Email, identity.Role)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *identity,
	}, nil
}

func (s *authService) Validate(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := s.jwtManager.Validate(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
