package user

import (
	"context"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// UpdateUserInput merges: nil fields are left alone.
type UpdateUserInput struct {
	PrincipalID uint
	UserID      uint

	Name     *string
	Email    *string
	Password *string
}

type UpdateUser struct {
	repo        domainUser.Repository
	emailDomain validators.DomainChecker
	metrics     *metrics.Metrics
}

func NewUpdateUser(
	repo domainUser.Repository,
	check validators.DomainChecker,
	m *metrics.Metrics,
) *UpdateUser {
	if check == nil {
		check = validators.AcceptAll
	}
	return &UpdateUser{repo: repo, emailDomain: check, metrics: m}
}

func (uc *UpdateUser) Execute(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	u, err := load(ctx, uc.repo, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := ensureSelf(in.PrincipalID, u.ID); err != nil {
		uc.metrics.AuthorizationDenied("user")
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if email != u.Email && !uc.emailDomain(email) {
			return nil, errEmailDomain
		}
		u.Email = email
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, translate(err)
	}
	return u, nil
}
