package user

import (
	"context"

	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// GetUser reads any user; profiles are visible to every principal.
type GetUser struct {
	repo domainUser.Repository
}

func NewGetUser(repo domainUser.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return load(ctx, uc.repo, id)
}
