package impl

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds a per-call random salt in the output, so Hash never produces
// the same string twice for the same input.
const bcryptCost = 12

// maxPasswordBytes is bcrypt's input limit; GenerateFromPassword rejects
// anything longer. The validation schemas enforce it so an over-length
// password is a field error, never an internal one.
const maxPasswordBytes = 72

type PasswordServiceImpl struct {
	cost int
}

func NewPasswordServiceBcrypt() *PasswordServiceImpl {
	return &PasswordServiceImpl{cost: bcryptCost}
}

func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p *PasswordServiceImpl) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
