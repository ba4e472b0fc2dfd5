package project

import (
	"context"

	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
)

type DeleteProject struct {
	repo    domainProject.Repository
	metrics *metrics.Metrics
}

func NewDeleteProject(repo domainProject.Repository, m *metrics.Metrics) *DeleteProject {
	return &DeleteProject{repo: repo, metrics: m}
}

func (uc *DeleteProject) Execute(ctx context.Context, principalID, projectID uint) error {
	if _, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, projectID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, projectID)
}
