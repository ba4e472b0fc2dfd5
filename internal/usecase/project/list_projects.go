package project

import (
	"context"

	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type ListProjectsInput struct {
	PrincipalID uint
	Search      string
	// Status filters by exact value when set.
	Status *int
	Page   pagination.Params
}

type ListProjects struct {
	repo domainProject.Repository
}

func NewListProjects(repo domainProject.Repository) *ListProjects {
	return &ListProjects{repo: repo}
}

// Execute always scopes to the principal's projects.
func (uc *ListProjects) Execute(
	ctx context.Context,
	in ListProjectsInput,
) ([]models.Project, pagination.Meta, error) {

	items, total, err := uc.repo.List(ctx, domainProject.Filter{
		OwnerID: in.PrincipalID,
		Search:  in.Search,
		Status:  in.Status,
		Page:    in.Page,
	})
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return items, pagination.NewMeta(in.Page, total), nil
}
