package contact

import (
	"context"

	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type Filter struct {
	OwnerID uint
	// AllOwners drops the owner filter. Only set from an explicit request flag.
	AllOwners bool
	Search    string
	Page      pagination.Params
}

type Repository interface {
	Create(ctx context.Context, c *models.Contact) error
	// GetByID loads the contact with its projects.
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, f Filter) ([]models.Contact, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}
