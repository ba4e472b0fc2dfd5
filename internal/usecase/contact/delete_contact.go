package contact

import (
	"context"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
)

type DeleteContact struct {
	repo    domainContact.Repository
	metrics *metrics.Metrics
}

func NewDeleteContact(repo domainContact.Repository, m *metrics.Metrics) *DeleteContact {
	return &DeleteContact{repo: repo, metrics: m}
}

// Execute removes the contact. Its projects survive with contact_id unset.
func (uc *DeleteContact) Execute(ctx context.Context, principalID, contactID uint) error {
	if _, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, contactID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, contactID)
}
