package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"accounts/internal/domain"
	"accounts/internal/dto"
	"accounts/internal/emailnorm"
	"accounts/internal/observability/metrics"
	"accounts/internal/observability/middleware"
	"accounts/internal/service"
	"accounts/internal/store"
	"accounts/internal/validation"
)

// accountStore is the slice of the identity store the account pipelines use.
// *store.AccountStore satisfies it; tests provide an in-memory fake.
type accountStore interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id domain.AccountID, passwordHash string) error
}

type SignupServiceImpl struct {
	Accounts  accountStore
	Passwords service.PasswordService
}

func NewSignupServiceImpl(st *store.Store, passwords service.PasswordService) *SignupServiceImpl {
	return &SignupServiceImpl{Accounts: st.Accounts(), Passwords: passwords}
}

func (s *SignupServiceImpl) schema() validation.Schema {
	return validation.Schema{
		{Name: "email", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.EmailFormat{},
			validation.EmailAvailable{Accounts: s.Accounts},
		}},
		{Name: "password", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.MaxBytes{Limit: maxPasswordBytes},
		}},
		{Name: "passwordCheck", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.Match{Other: "password"},
		}},
	}
}

func (s *SignupServiceImpl) Signup(ctx context.Context, r dto.SignupRequest) (*dto.SignupResponse, error) {
	result := "success"
	defer func() {
		metrics.SignupsTotal.WithLabelValues(result).Inc()
	}()

	if err := s.schema().Run(ctx, validation.Args{Values: r.Fields()}); err != nil {
		result = "failure"
		return nil, err
	}

	hash, err := s.Passwords.Hash(r.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}

	now := time.Now().UTC()
	acc := dto.NewAccountFromSignup(r, emailnorm.Normalize(r.Email), hash, now)

	if err := s.Accounts.Create(ctx, acc); err != nil {
		result = "failure"
		// A concurrent signup can slip past the advisory pre-check; the
		// constraint violation maps to the same field error it would have
		// produced.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, duplicateEmailFailure()
		}
		return nil, err
	}

	slog.Info("account created",
		"account_id", acc.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	return dto.SignupResult(acc), nil
}

func duplicateEmailFailure() *validation.Failure {
	rule := validation.EmailAvailable{}
	return &validation.Failure{Errors: []validation.FieldError{{
		Field:   "email",
		Rule:    rule.Name(),
		Message: rule.Message(),
	}}}
}
