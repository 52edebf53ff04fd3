package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain"
	"accounts/internal/dto"
	"accounts/internal/observability/metrics"
	"accounts/internal/observability/middleware"
	"accounts/internal/service"
	"accounts/internal/store"
	"accounts/internal/validation"
)

type ProfileServiceImpl struct {
	Accounts  accountStore
	Passwords service.PasswordService
}

func NewProfileServiceImpl(st *store.Store, passwords service.PasswordService) *ProfileServiceImpl {
	return &ProfileServiceImpl{Accounts: st.Accounts(), Passwords: passwords}
}

// Profile reloads the account so the projection reflects persisted state, not
// just the token claims.
func (p *ProfileServiceImpl) Profile(ctx context.Context, acc *domain.Account) (*dto.ProfileResponse, error) {
	stored, err := p.Accounts.GetByID(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	return dto.ProfileResult(stored), nil
}

func (p *ProfileServiceImpl) schema() validation.Schema {
	return validation.Schema{
		{Name: "oldPassword", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.PasswordCorrect{Accounts: p.Accounts, Hasher: p.Passwords},
		}},
		{Name: "newPassword", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.MaxBytes{Limit: maxPasswordBytes},
		}},
		{Name: "newPasswordCheck", Rules: []validation.Rule{
			validation.NotEmpty{},
			validation.Match{Other: "newPassword"},
		}},
	}
}

// ChangePassword validates against the requesting account (the old-password
// rule needs who-is-asking, not anything in the payload) and overwrites the
// stored hash with a targeted update. Existing tokens stay valid until their
// own expiry.
func (p *ProfileServiceImpl) ChangePassword(ctx context.Context, acc *domain.Account, r dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	result := "success"
	defer func() {
		metrics.PasswordChangesTotal.WithLabelValues(result).Inc()
	}()

	if err := p.schema().Run(ctx, validation.Args{Values: r.Fields(), Account: acc}); err != nil {
		result = "failure"
		return nil, err
	}

	hash, err := p.Passwords.Hash(r.NewPassword)
	if err != nil {
		result = "failure"
		return nil, err
	}

	if err := p.Accounts.UpdatePassword(ctx, acc.ID, hash); err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("password changed",
		"account_id", acc.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	return dto.PasswordChangedResult(), nil
}
