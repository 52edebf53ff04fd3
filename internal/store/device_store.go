package store

import (
	"context"
	"errors"
	"time"

	"accounts/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceStore struct {
	db    *gorm.DB
	store *Store
}

func (s *Store) Devices() *DeviceStore { return &DeviceStore{db: s.DB, store: s} }

func (d *DeviceStore) Create(ctx context.Context, dev *domain.Device) error {
	if dev.ID == uuid.Nil {
		dev.ID = uuid.New()
	}
	return d.db.WithContext(ctx).Create(dev).Error
}

// ListByAccount returns the account's live devices. Reads are always scoped
// by owner id; a raw-id lookup must not leak other accounts' devices.
func (d *DeviceStore) ListByAccount(ctx context.Context, accountID domain.AccountID) ([]*domain.Device, error) {
	var devs []*domain.Device
	err := d.db.WithContext(ctx).
		Where("account_id = ? AND is_deleted = ?", accountID, false).
		Order("created_at").
		Find(&devs).Error
	if err != nil {
		return nil, err
	}
	return devs, nil
}

// RemoveForAccount soft-deletes the device: the row is retained and only
// is_deleted flips, via a targeted update inside one transaction. Lookup is
// owner-scoped, so a foreign or already-deleted device is simply not found.
func (d *DeviceStore) RemoveForAccount(ctx context.Context, id domain.DeviceID, accountID domain.AccountID) error {
	return d.store.WithTx(ctx, func(tx *Store) error {
		var dev domain.Device
		err := tx.DB.WithContext(ctx).
			First(&dev, "id = ? AND account_id = ? AND is_deleted = ?", id, accountID, false).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDeviceNotFound
			}
			return err
		}
		return tx.DB.WithContext(ctx).Model(&domain.Device{}).
			Where("id = ?", dev.ID).
			Updates(map[string]any{
				"is_deleted": true,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}
