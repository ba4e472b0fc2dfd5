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

// UpdateContactInput uses nil for "not sent"; absent fields keep their
// stored value.
type UpdateContactInput struct {
	PrincipalID uint
	ContactID   uint

	Name        *string
	Email       *string
	PhoneNumber *string
	Company     *string
	UserID      *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateContact struct {
	repo    domainContact.Repository
	owner   ownerResolver
	metrics *metrics.Metrics
}

func NewUpdateContact(
	repo domainContact.Repository,
	users domainUser.Repository,
	m *metrics.Metrics,
	log *zap.Logger,
) *UpdateContact {
	return &UpdateContact{
		repo:    repo,
		owner:   newOwnerResolver(users, m, log),
		metrics: m,
	}
}

func (uc *UpdateContact) Execute(
	ctx context.Context,
	in UpdateContactInput,
) (*models.Contact, error) {

	// --------------------------------------------------
	// Ownership first, before anything is written
	// --------------------------------------------------
	c, err := loadOwned(ctx, uc.repo, uc.metrics, in.PrincipalID, in.ContactID)
	if err != nil {
		return nil, err
	}

	email := c.Email
	if in.Email != nil {
		email = strings.TrimSpace(*in.Email)
	}

	// --------------------------------------------------
	// Owner: user_id > name > keep current
	// --------------------------------------------------
	ownerID, err := uc.owner.resolve(ctx, ownerInput{
		Operation: "update",
		Request:   domainContact.OwnerRequest{UserID: in.UserID, Name: in.Name},
		Email:     validators.NormalizeEmail(email),
		Fallback:  c.UserID,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Merge
	// --------------------------------------------------
	c.UserID = ownerID
	c.Email = email
	if in.Name != nil {
		c.Name = in.Name
	}
	if in.PhoneNumber != nil {
		c.PhoneNumber = in.PhoneNumber
	}
	if in.Company != nil {
		c.Company = in.Company
	}
	c.User = nil
	c.Projects = nil

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// CheckOwner runs the same lookup as Execute without writing. Handlers use
// it to answer a foreign contact with 403 even when the body is invalid.
func (uc *UpdateContact) CheckOwner(ctx context.Context, principalID, contactID uint) error {
	_, err := loadOwned(ctx, uc.repo, uc.metrics, principalID, contactID)
	return err
}
