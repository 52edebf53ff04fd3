package impl

import (
	"context"
	"errors"
	"log/slog"

	"accounts/internal/domain"
	"accounts/internal/dto"
	"accounts/internal/emailnorm"
	"accounts/internal/observability/metrics"
	"accounts/internal/observability/middleware"
	"accounts/internal/service"
	"accounts/internal/store"
	"accounts/internal/validation"
)

// dummyPasswordHash is verified when the email resolves to no account, so a
// lookup miss and a wrong password take comparable time. It never matches.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type AuthServiceImpl struct {
	Accounts  accountStore
	Passwords service.PasswordService
	Tokens    service.TokenService
}

func NewAuthServiceImpl(st *store.Store, passwords service.PasswordService, tokens service.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{Accounts: st.Accounts(), Passwords: passwords, Tokens: tokens}
}

func (a *AuthServiceImpl) schema() validation.Schema {
	return validation.Schema{
		{Name: "email", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.EmailFormat{},
		}},
		{Name: "password", Rules: []validation.Rule{
			validation.NotEmpty{},
		}},
	}
}

func (a *AuthServiceImpl) Authenticate(ctx context.Context, r dto.AuthRequest) (*dto.AuthResponse, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	if err := a.schema().Run(ctx, validation.Args{Values: r.Fields()}); err != nil {
		result = "failure"
		return nil, err
	}

	acc, err := a.Accounts.GetByEmail(ctx, emailnorm.Normalize(r.Email))
	if err != nil {
		result = "failure"
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Don't leak which part was wrong.
			a.Passwords.Verify(r.Password, dummyPasswordHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.Passwords.Verify(r.Password, acc.PasswordHash) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.Tokens.Issue(acc)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("account authenticated",
		"account_id", acc.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	return &dto.AuthResponse{Token: token}, nil
}
