package dto

import "strings"

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *AuthRequest) Trim() { r.Email = strings.TrimSpace(r.Email) }

func (r AuthRequest) Fields() map[string]string {
	return map[string]string{
		"email":    r.Email,
		"password": r.Password,
	}
}

type AuthResponse struct {
	Token string `json:"token"`
}
