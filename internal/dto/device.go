package dto

import (
	"strings"
	"time"

	"accounts/internal/domain"
)

type DeviceCreateRequest struct {
	Name string `json:"name"`
}

func (r *DeviceCreateRequest) Trim() { r.Name = strings.TrimSpace(r.Name) }

func (r DeviceCreateRequest) Fields() map[string]string {
	return map[string]string{"name": r.Name}
}

// DeviceCreateResponse carries the generated plaintext credential exactly
// once; only its hash is persisted and it cannot be recovered later.
type DeviceCreateResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeviceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewDeviceFromRequest maps a validated registration to the persistence
// shape. Only the credential hash is carried, never the plaintext.
func NewDeviceFromRequest(r DeviceCreateRequest, owner domain.AccountID, credentialHash string, now time.Time) *domain.Device {
	return &domain.Device{
		AccountID:      owner,
		Name:           r.Name,
		CredentialHash: credentialHash,
		IsDeleted:      false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func DeviceCreateResult(dev *domain.Device, plaintext string) *DeviceCreateResponse {
	return &DeviceCreateResponse{
		ID:       dev.ID.String(),
		Name:     dev.Name,
		Password: plaintext,
	}
}

func DeviceResult(dev *domain.Device) DeviceResponse {
	return DeviceResponse{
		ID:        dev.ID.String(),
		Name:      dev.Name,
		CreatedAt: dev.CreatedAt,
	}
}

func DeviceListResult(devs []*domain.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devs))
	for _, d := range devs {
		out = append(out, DeviceResult(d))
	}
	return out
}

func DeviceDeletedResult() *MessageResponse {
	return &MessageResponse{Message: "device is now deleted"}
}
