package project

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	"github.com/BruksfildServices01/crm-api/internal/domain/access"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

const resource = "project"

func loadOwned(
	ctx context.Context,
	repo domainProject.Repository,
	m *metrics.Metrics,
	principalID uint,
	projectID uint,
) (*models.Project, error) {

	p, err := repo.GetByID(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("project_not_found", "Project not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := access.EnsureOwner(principalID, p.UserID, resource); err != nil {
		m.AuthorizationDenied(resource)
		return nil, err
	}
	return p, nil
}

// ensureContactOwned rejects a contact_id that is missing or belongs to
// someone else with one indistinguishable error.
func ensureContactOwned(
	ctx context.Context,
	contacts domainContact.Repository,
	principalID uint,
	contactID *uint,
) error {

	if contactID == nil {
		return nil
	}

	c, err := contacts.GetByID(ctx, *contactID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if c == nil || c.UserID != principalID {
		return httperr.NotFoundOrUnauthorized(
			"contact_not_found_or_unauthorized",
			"Contact not found or unauthorized",
		)
	}
	return nil
}

// contactRef treats contact_id 0 as "no contact".
func contactRef(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
