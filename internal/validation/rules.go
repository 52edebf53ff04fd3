package validation

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"accounts/internal/domain"
	"accounts/internal/emailnorm"
)

// AccountSource is the slice of the identity store the async rules need.
type AccountSource interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) bool
}

// NotEmpty fails on empty or all-whitespace values.
type NotEmpty struct{}

func (NotEmpty) Name() string    { return "notEmpty" }
func (NotEmpty) Message() string { return "must not be empty" }

func (NotEmpty) Validate(_ context.Context, value string, _ Args) (bool, error) {
	return strings.TrimSpace(value) != "", nil
}

// MaxBytes caps the byte length of a value. Bcrypt only reads the first 72
// bytes of a password, so longer inputs are refused up front rather than
// silently truncated or bounced as an internal error.
type MaxBytes struct {
	Limit int
}

func (MaxBytes) Name() string      { return "maxLength" }
func (m MaxBytes) Message() string { return fmt.Sprintf("must be at most %d bytes", m.Limit) }

func (m MaxBytes) Validate(_ context.Context, value string, _ Args) (bool, error) {
	return len(value) <= m.Limit, nil
}

// EmailFormat is a syntactic check only; availability is a separate rule.
type EmailFormat struct{}

func (EmailFormat) Name() string    { return "email" }
func (EmailFormat) Message() string { return "must be a valid email address" }

func (EmailFormat) Validate(_ context.Context, value string, _ Args) (bool, error) {
	if value == "" {
		return false, nil
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false, nil
	}
	// mail.ParseAddress accepts domains without a dot; require one.
	at := strings.LastIndexByte(value, '@')
	return strings.Contains(value[at+1:], "."), nil
}

// Match requires exact string equality with another submitted field. An empty
// referenced field passes: its own NotEmpty rule reports that independently.
type Match struct {
	Other string
}

func (Match) Name() string      { return "match" }
func (m Match) Message() string { return "does not match " + m.Other }

func (m Match) Validate(_ context.Context, value string, args Args) (bool, error) {
	other := args.Values[m.Other]
	if other == "" {
		return true, nil
	}
	return value == other, nil
}

// EmailAvailable checks that no account exists under the candidate's
// normalized form. Advisory only: two concurrent signups can both pass, and
// the storage unique constraint is the authoritative serialization point.
type EmailAvailable struct {
	Accounts AccountSource
}

func (EmailAvailable) Name() string    { return "uniqueness" }
func (EmailAvailable) Message() string { return "an account with this email already exists" }

func (r EmailAvailable) Validate(ctx context.Context, value string, _ Args) (bool, error) {
	acc, err := r.Accounts.GetByEmail(ctx, emailnorm.Normalize(value))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return true, nil
		}
		return false, err
	}
	return acc == nil, nil
}

// PasswordCorrect verifies the value against the requesting account's stored
// hash. The account comes from Args, not from the payload; the rule fails
// closed when no authenticated account is present.
type PasswordCorrect struct {
	Accounts AccountSource
	Hasher   PasswordVerifier
}

func (PasswordCorrect) Name() string    { return "passwordCorrect" }
func (PasswordCorrect) Message() string { return "your current password is incorrect" }

func (r PasswordCorrect) Validate(ctx context.Context, value string, args Args) (bool, error) {
	if args.Account == nil {
		return false, nil
	}
	acc, err := r.Accounts.GetByID(ctx, args.Account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return r.Hasher.Verify(value, acc.PasswordHash), nil
}
