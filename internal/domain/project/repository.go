package project

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type Filter struct {
	OwnerID uint
	Search  string
	Status  *int
	Page    pagination.Params
}

type Repository interface {
	Create(ctx context.Context, p *models.Project) error
	// GetByID loads the project with its contact.
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, f Filter) ([]models.Project, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	CountByStatus(ctx context.Context, ownerID uint) (map[int]int64, error)
}

// Matches is the in-process form of the list filter: search over name or
// description, AND an exact status when one is given.
func Matches(p models.Project, search string, status *int) bool {
	if status != nil && p.Status != *status {
		return false
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), search)
}
