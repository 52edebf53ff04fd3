package domain

import "time"

type Account struct {
	ID AccountID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	// Email is the normalized address used for lookup and login.
	Email string `gorm:"type:text;uniqueIndex:ux_accounts_email" db:"email" json:"email"`
	// EmailOriginal preserves the exact string submitted at signup.
	EmailOriginal string    `gorm:"type:text;not null" db:"email_original" json:"-"`
	PasswordHash  string    `gorm:"type:text;not null" db:"password_hash" json:"-"`
	CreatedAt     time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }

// Identity is the claim set carried by an issued token. It is ephemeral and
// never persisted.
type Identity struct {
	ID    AccountID
	Email string
}
