package domain

import "errors"

var (
	// ErrInvalidCredentials is the single opaque authentication failure. It
	// never distinguishes "no such account" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDeviceNotFound     = errors.New("device not found")
	// ErrDuplicateEmail surfaces the storage-level unique constraint on the
	// normalized email column.
	ErrDuplicateEmail = errors.New("email already registered")
)
