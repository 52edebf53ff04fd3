package service

// PasswordService is the one-way credential hasher. Both operations are total
// over strings; a wrong password is a false result, not an error.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
