package service

import (
	"context"

	"accounts/internal/domain"
	"accounts/internal/dto"
)

type ProfileService interface {
	Profile(ctx context.Context, acc *domain.Account) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, acc *domain.Account, r dto.ChangePasswordRequest) (*dto.MessageResponse, error)
}
