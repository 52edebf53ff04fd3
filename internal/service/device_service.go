package service

import (
	"context"

	"accounts/internal/domain"
	"accounts/internal/dto"
)

type DeviceService interface {
	Register(ctx context.Context, acc *domain.Account, r dto.DeviceCreateRequest) (*dto.DeviceCreateResponse, error)
	List(ctx context.Context, acc *domain.Account) ([]dto.DeviceResponse, error)
	Remove(ctx context.Context, acc *domain.Account, id domain.DeviceID) (*dto.MessageResponse, error)
}
