package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type Filter struct {
	Search string
	Page   pagination.Params
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, f Filter) ([]models.User, int64, error)
	Count(ctx context.Context) (int64, error)

	// CountOwnedRecords counts contacts and projects whose user_id is id.
	CountOwnedRecords(ctx context.Context, id uint) (int64, error)
}

// Matches is the in-process form of the list search: case-insensitive
// substring over name or email.
func Matches(u models.User, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), search) ||
		strings.Contains(strings.ToLower(u.Email), search)
}
