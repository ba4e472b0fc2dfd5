package contact

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateContactInput struct {
	PrincipalID uint

	Name        *string
	Email       string
	PhoneNumber *string
	Company     *string
	UserID      *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateContact struct {
	repo  domainContact.Repository
	owner ownerResolver
}

func NewCreateContact(
	repo domainContact.Repository,
	users domainUser.Repository,
	m *metrics.Metrics,
	log *zap.Logger,
) *CreateContact {
	return &CreateContact{
		repo:  repo,
		owner: newOwnerResolver(users, m, log),
	}
}

// Execute has no ownership check: any principal may create a contact,
// including one linked to another user.
func (uc *CreateContact) Execute(
	ctx context.Context,
	in CreateContactInput,
) (*models.Contact, error) {

	// The contact keeps the address as sent; only a spawned user gets the
	// normalized form.
	email := strings.TrimSpace(in.Email)

	ownerID, err := uc.owner.resolve(ctx, ownerInput{
		Operation: "create",
		Request:   domainContact.OwnerRequest{UserID: in.UserID, Name: in.Name},
		Email:     validators.NormalizeEmail(email),
		Fallback:  in.PrincipalID,
	})
	if err != nil {
		return nil, err
	}

	c := &models.Contact{
		UserID:      ownerID,
		Name:        in.Name,
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		Company:     in.Company,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
