package project

import (
	"context"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateProjectInput replaces every editable field. A nil ContactID or
// Description clears it.
type UpdateProjectInput struct {
	PrincipalID uint
	ProjectID   uint

	Name        string
	Description *string
	Status      int
	ContactID   *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateProject struct {
	repo     domainProject.Repository
	contacts domainContact.Repository
	metrics  *metrics.Metrics
}

func NewUpdateProject(
	repo domainProject.Repository,
	contacts domainContact.Repository,
	m *metrics.Metrics,
) *UpdateProject {
	return &UpdateProject{
		repo:     repo,
		contacts: contacts,
		metrics:  m,
	}
}

func (uc *UpdateProject) Execute(
	ctx context.Context,
	in UpdateProjectInput,
) (*models.Project, error) {

	p, err := loadOwned(ctx, uc.repo, uc.metrics, in.PrincipalID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := domainProject.ValidateStatus(in.Status); err != nil {
		return nil, err
	}

	contactID := contactRef(in.ContactID)
	if err := ensureContactOwned(ctx, uc.contacts, in.PrincipalID, contactID); err != nil {
		return nil, err
	}

	// user_id is never touched here.
	p.Name = in.Name
	p.Description = in.Description
	p.Status = in.Status
	p.ContactID = contactID
	p.Contact = nil
	p.User = nil

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// CheckOwner applies the ownership rule without touching the project.
func (uc *UpdateProject) CheckOwner(ctx context.Context, principalID, projectID uint) error {
	_, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, projectID)
	return err
}
