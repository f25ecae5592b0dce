package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

func newTestService() auth.Service {
	credentials := auth.NewEnvCredentialStore(config.AdminConfig{
		Email:    "admin@portfolio.com",
		Password: "admin123",
		Name:     "Admin",
	})
	return NewAuthService(credentials, jwt.NewManager("test-secret", time.Hour))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@portfolio.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, auth.RoleAdmin, resp.User.Role)

	// The issued token validates back to the admin identity
	identity, err := svc.Validate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", identity.ID)
	assert.Equal(t, auth.RoleAdmin, identity.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@portfolio.com", "nope"},
		{"unknown email", "someone@example.com", "admin123"},
		{"both wrong", "someone@example.com", "nope"},
		{"empty pair", "", ""},
		{"swapped fields", "admin123", "admin@portfolio.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), auth.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestValidateRejectsForeignToken(t *testing.T) {
	svc := newTestService()

	// Token signed with a different secret
	foreign, _, err := jwt.NewManager("other-secret", time.Hour).Generate("1", "admin@portfolio.com", "admin")
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), foreign)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Validate(context.Background(), "garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	credentials := auth.NewEnvCredentialStore(config.AdminConfig{
		Email:    "admin@portfolio.com",
		Password: "admin123",
	})
	svc := NewAuthService(credentials, jwt.NewManager("test-secret", -time.Minute))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@portfolio.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
