package project

import (
	"context"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateProjectInput struct {
	PrincipalID uint

	Name        string
	Description *string
	Status      int
	ContactID   *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateProject struct {
	repo     domainProject.Repository
	contacts domainContact.Repository
}

func NewCreateProject(
	repo domainProject.Repository,
	contacts domainContact.Repository,
) *CreateProject {
	return &CreateProject{
		repo:     repo,
		contacts: contacts,
	}
}

func (uc *CreateProject) Execute(
	ctx context.Context,
	in CreateProjectInput,
) (*models.Project, error) {

	if err := domainProject.ValidateStatus(in.Status); err != nil {
		return nil, err
	}

	contactID := contactRef(in.ContactID)
	if err := ensureContactOwned(ctx, uc.contacts, in.PrincipalID, contactID); err != nil {
		return nil, err
	}

	p := &models.Project{
		UserID:      in.PrincipalID,
		ContactID:   contactID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
