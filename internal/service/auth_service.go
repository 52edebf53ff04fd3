package service

import (
	"context"

	"accounts/internal/dto"
)

type AuthService interface {
	// Authenticate resolves email+password to a token. Any credential miss is
	// domain.ErrInvalidCredentials, deliberately opaque.
	Authenticate(ctx context.Context, r dto.AuthRequest) (*dto.AuthResponse, error)
}
