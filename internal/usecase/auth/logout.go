package auth

import (
	"context"

	authn "github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
)

// Logout revokes only the token that was presented.
type Logout struct {
	revocations authn.RevocationStore
	metrics     *metrics.Metrics
}

func NewLogout(revocations authn.RevocationStore, m *metrics.Metrics) *Logout {
	return &Logout{revocations: revocations, metrics: m}
}

func (uc *Logout) Execute(ctx context.Context, claims *authn.Claims) error {
	if claims == nil || claims.ID == "" {
		return authn.ErrInvalidToken
	}

	exp := claims.ExpiresAt
	if exp == nil {
		return authn.ErrInvalidToken
	}

	if err := uc.revocations.Revoke(ctx, claims.ID, exp.Time); err != nil {
		uc.metrics.AuthEvent("logout", false)
		return err
	}

	uc.metrics.AuthEvent("logout", true)
	return nil
}
