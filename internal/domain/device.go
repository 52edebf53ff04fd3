package domain

import "time"

type Device struct {
	ID        DeviceID  `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	AccountID AccountID `gorm:"type:uuid;index" db:"account_id" json:"accountId"`
	Name      string    `gorm:"type:text;not null" db:"name" json:"name"`
	// CredentialHash stores the hash of the generated device credential. The
	// plaintext is returned once at registration and cannot be recovered.
	CredentialHash string    `gorm:"type:text;not null" db:"credential_hash" json:"-"`
	IsDeleted      bool      `gorm:"not null;default:false" db:"is_deleted" json:"-"`
	CreatedAt      time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (Device) TableName() string { return "devices" }
