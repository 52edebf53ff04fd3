package service

import "accounts/internal/domain"

type TokenService interface {
	// Issue signs an identity claim (subject id + email) into a bearer token
	// with the configured expiry.
	Issue(acc *domain.Account) (string, error)
	// Verify parses and validates a bearer token and returns the identity it
	// asserts.
	Verify(token string) (*domain.Identity, error)
}
