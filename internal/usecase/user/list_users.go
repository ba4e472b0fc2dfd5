package user

import (
	"context"

	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type ListUsers struct {
	repo domainUser.Repository
}

func NewListUsers(repo domainUser.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	search string,
	page pagination.Params,
) ([]models.User, pagination.Meta, error) {

	items, total, err := uc.repo.List(ctx, domainUser.Filter{Search: search, Page: page})
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(page, total), nil
}
