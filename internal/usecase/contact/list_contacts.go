package contact

import (
	"context"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type ListContactsInput struct {
	PrincipalID uint
	// All lists every owner's contacts. Never the default.
	All    bool
	Search string
	Page   pagination.Params
}

type ListContacts struct {
	repo domainContact.Repository
}

func NewListContacts(repo domainContact.Repository) *ListContacts {
	return &ListContacts{repo: repo}
}

func (uc *ListContacts) Execute(
	ctx context.Context,
	in ListContactsInput,
) ([]models.Contact, pagination.Meta, error) {

	items, total, err := uc.repo.List(ctx, domainContact.Filter{
		OwnerID:   in.PrincipalID,
		AllOwners: in.All,
		Search:    in.Search,
		Page:      in.Page,
	})
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return items, pagination.NewMeta(in.Page, total), nil
}
