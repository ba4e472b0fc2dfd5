package auth

import (
	"context"
	"errors"

	authn "github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

const invalidCredentials = "The provided credentials are incorrect."

// ErrInvalidCredentials does not say whether the email or the password was wrong.
var ErrInvalidCredentials = httperr.ValidationFields("invalid_credentials", invalidCredentials,
	map[string][]string{"email": {invalidCredentials}})

type Login struct {
	users   domainUser.Repository
	issuer  *authn.TokenIssuer
	metrics *metrics.Metrics
}

func NewLogin(
	users domainUser.Repository,
	issuer *authn.TokenIssuer,
	m *metrics.Metrics,
) *Login {
	return &Login{users: users, issuer: issuer, metrics: m}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Result, error) {
	u, err := uc.users.GetByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if u == nil || !authn.CheckPassword(u.PasswordHash, password) {
		uc.metrics.AuthEvent("login", false)
		return nil, ErrInvalidCredentials
	}

	token, _, err := uc.issuer.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	uc.metrics.AuthEvent("login", true)
	return &Result{User: u, Token: token}, nil
}
