package dto

import (
	"strings"
	"time"

	"accounts/internal/domain"
)

type SignupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	PasswordCheck string `json:"passwordCheck"`
}

// Trim cleans non-secret fields. Passwords are never trimmed.
func (r *SignupRequest) Trim() { r.Email = strings.TrimSpace(r.Email) }

// Fields exposes the submitted values to the validation runner.
func (r SignupRequest) Fields() map[string]string {
	return map[string]string{
		"email":         r.Email,
		"password":      r.Password,
		"passwordCheck": r.PasswordCheck,
	}
}

type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewAccountFromSignup maps validated signup input to the persistence shape.
// Every field is listed explicitly: the normalized email replaces the raw
// one, the raw submission is preserved in EmailOriginal, and only the hash of
// the password is carried. PasswordCheck is dropped here and never stored.
func NewAccountFromSignup(r SignupRequest, normalizedEmail, passwordHash string, now time.Time) *domain.Account {
	return &domain.Account{
		Email:         normalizedEmail,
		EmailOriginal: r.Email,
		PasswordHash:  passwordHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SignupResult shapes the public projection of a created account. Hash and
// original email stay hidden.
func SignupResult(acc *domain.Account) *SignupResponse {
	return &SignupResponse{
		ID:    acc.ID.String(),
		Email: acc.Email,
	}
}
