package contact

import (
	"context"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type GetContact struct {
	repo    domainContact.Repository
	users   domainUser.Repository
	metrics *metrics.Metrics
}

func NewGetContact(
	repo domainContact.Repository,
	users domainUser.Repository,
	m *metrics.Metrics,
) *GetContact {
	return &GetContact{repo: repo, users: users, metrics: m}
}

// Execute returns the contact with its owner and projects.
func (uc *GetContact) Execute(
	ctx context.Context,
	principalID uint,
	contactID uint,
) (*models.Contact, error) {

	c, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, contactID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.users.GetByID(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	c.User = owner

	return c, nil
}
