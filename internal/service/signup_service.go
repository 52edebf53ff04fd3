package service

import (
	"context"

	"accounts/internal/dto"
)

type SignupService interface {
	Signup(ctx context.Context, r dto.SignupRequest) (*dto.SignupResponse, error)
}
