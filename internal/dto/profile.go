package dto

import (
	"time"

	"accounts/internal/domain"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ProfileResult(acc *domain.Account) *ProfileResponse {
	return &ProfileResponse{
		ID:        acc.ID.String(),
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	}
}

type ChangePasswordRequest struct {
	OldPassword      string `json:"oldPassword"`
	NewPassword      string `json:"newPassword"`
	NewPasswordCheck string `json:"newPasswordCheck"`
}

func (r ChangePasswordRequest) Fields() map[string]string {
	return map[string]string{
		"oldPassword":      r.OldPassword,
		"newPassword":      r.NewPassword,
		"newPasswordCheck": r.NewPasswordCheck,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func PasswordChangedResult() *MessageResponse {
	return &MessageResponse{Message: "password changed successfully"}
}
