package project

import (
	"context"

	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type GetProject struct {
	repo    domainProject.Repository
	users   domainUser.Repository
	metrics *metrics.Metrics
}

func NewGetProject(
	repo domainProject.Repository,
	users domainUser.Repository,
	m *metrics.Metrics,
) *GetProject {
	return &GetProject{repo: repo, users: users, metrics: m}
}

// Execute returns the project with its owner and contact.
func (uc *GetProject) Execute(
	ctx context.Context,
	principalID uint,
	projectID uint,
) (*models.Project, error) {

	p, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, projectID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	p.User = owner

	return p, nil
}
