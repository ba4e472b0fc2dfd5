package contact

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	"github.com/BruksfildServices01/crm-api/internal/domain/access"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

const resource = "contact"

// loadOwned fetches a contact and applies the ownership rule.
func loadOwned(
	ctx context.Context,
	repo domainContact.Repository,
	m *metrics.Metrics,
	principalID uint,
	contactID uint,
) (*models.Contact, error) {

	c, err := repo.GetByID(ctx, contactID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("contact_not_found", "Contact not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := access.EnsureOwner(principalID, c.UserID, resource); err != nil {
		m.AuthorizationDenied(resource)
		return nil, err
	}
	return c, nil
}
