package impl

import (
	"context"
	"sync"
	"time"

	"accounts/internal/domain"

	"github.com/google/uuid"
)

// In-memory store fakes mirroring the gorm store's contract, including the
// unique-email constraint and owner-scoped device reads.

type memAccounts struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.Account
	byEmail map[string]uuid.UUID
}

func newMemAccounts() *memAccounts {
	return &memAccounts{
		byID:    make(map[uuid.UUID]*domain.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *memAccounts) Create(_ context.Context, acc *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[acc.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	cp := *acc
	m.byID[acc.ID] = &cp
	m.byEmail[acc.Email] = acc.ID
	return nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *m.byID[id]
	return &cp, nil
}

func (m *memAccounts) GetByID(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (m *memAccounts) UpdatePassword(_ context.Context, id domain.AccountID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.PasswordHash = passwordHash
	acc.UpdatedAt = time.Now().UTC()
	return nil
}

type memDevices struct {
	mu      sync.Mutex
	devices []*domain.Device
}

func (m *memDevices) Create(_ context.Context, dev *domain.Device) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dev.ID == uuid.Nil {
		dev.ID = uuid.New()
	}
	cp := *dev
	m.devices = append(m.devices, &cp)
	return nil
}

func (m *memDevices) ListByAccount(_ context.Context, accountID domain.AccountID) ([]*domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Device
	for _, d := range m.devices {
		if d.AccountID == accountID && !d.IsDeleted {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memDevices) RemoveForAccount(_ context.Context, id domain.DeviceID, accountID domain.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.devices {
		if d.ID == id && d.AccountID == accountID && !d.IsDeleted {
			d.IsDeleted = true
			d.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return domain.ErrDeviceNotFound
}

func (m *memDevices) get(id domain.DeviceID) *domain.Device {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.devices {
		if d.ID == id {
			cp := *d
			return &cp
		}
	}
	return nil
}

// fakeHasher keeps hashing deterministic and fast in pipeline tests; the real
// bcrypt implementation has its own tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) bool    { return hash == "hashed:"+password }
