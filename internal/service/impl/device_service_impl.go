package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"accounts/internal/domain"
	"accounts/internal/dto"
	"accounts/internal/observability/metrics"
	"accounts/internal/observability/middleware"
	"accounts/internal/service"
	"accounts/internal/store"
	"accounts/internal/validation"
)

const credentialBytes = 20

// deviceStore is the slice of the device store the service uses.
// *store.DeviceStore satisfies it; tests provide an in-memory fake.
type deviceStore interface {
	Create(ctx context.Context, dev *domain.Device) error
	ListByAccount(ctx context.Context, accountID domain.AccountID) ([]*domain.Device, error)
	RemoveForAccount(ctx context.Context, id domain.DeviceID, accountID domain.AccountID) error
}

type DeviceServiceImpl struct {
	Devices   deviceStore
	Passwords service.PasswordService
}

func NewDeviceServiceImpl(st *store.Store, passwords service.PasswordService) *DeviceServiceImpl {
	return &DeviceServiceImpl{Devices: st.Devices(), Passwords: passwords}
}

func (d *DeviceServiceImpl) schema() validation.Schema {
	return validation.Schema{
		{Name: "name", Rules: []validation.Rule{
			validation.NotEmpty{},
		}},
	}
}

// Register generates the device credential server-side, stores only its hash
// and returns the plaintext exactly once in the response.
func (d *DeviceServiceImpl) Register(ctx context.Context, acc *domain.Account, r dto.DeviceCreateRequest) (*dto.DeviceCreateResponse, error) {
	result := "success"
	defer func() {
		metrics.DeviceRegistrationsTotal.WithLabelValues(result).Inc()
	}()

	if err := d.schema().Run(ctx, validation.Args{Values: r.Fields(), Account: acc}); err != nil {
		result = "failure"
		return nil, err
	}

	plaintext, err := generateCredential()
	if err != nil {
		result = "failure"
		return nil, err
	}
	hash, err := d.Passwords.Hash(plaintext)
	if err != nil {
		result = "failure"
		return nil, err
	}

	dev := dto.NewDeviceFromRequest(r, acc.ID, hash, time.Now().UTC())
	if err := d.Devices.Create(ctx, dev); err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("device registered",
		"device_id", dev.ID,
		"account_id", acc.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	return dto.DeviceCreateResult(dev, plaintext), nil
}

func (d *DeviceServiceImpl) List(ctx context.Context, acc *domain.Account) ([]dto.DeviceResponse, error) {
	devs, err := d.Devices.ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	return dto.DeviceListResult(devs), nil
}

// Remove soft-deletes the device. The lookup is scoped by owner id, so the
// existence of another account's device is never revealed.
func (d *DeviceServiceImpl) Remove(ctx context.Context, acc *domain.Account, id domain.DeviceID) (*dto.MessageResponse, error) {
	if err := d.Devices.RemoveForAccount(ctx, id, acc.ID); err != nil {
		return nil, err
	}

	slog.Info("device removed",
		"device_id", id,
		"account_id", acc.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	return dto.DeviceDeletedResult(), nil
}

func generateCredential() (string, error) {
	buf := make([]byte, credentialBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
