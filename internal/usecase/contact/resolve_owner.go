package contact

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// ownerResolver decides which user a contact is linked to.
//
// Spawning a user and writing the contact are two separate writes. If the
// contact write fails the new user stays behind.
type ownerResolver struct {
	users   domainUser.Repository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func newOwnerResolver(users domainUser.Repository, m *metrics.Metrics, log *zap.Logger) ownerResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return ownerResolver{users: users, metrics: m, log: log}
}

type ownerInput struct {
	Operation string
	Request   domainContact.OwnerRequest
	// Email is the address a spawned user gets.
	Email string
	// Fallback is the owner used when neither user_id nor name is filled.
	Fallback uint
}

func (r ownerResolver) resolve(ctx context.Context, in ownerInput) (uint, error) {
	source := domainContact.ResolveOwnerSource(in.Request)

	var (
		ownerID uint
		err     error
	)
	switch source {
	case domainContact.OwnerExistingUser:
		ownerID, err = r.existing(ctx, *in.Request.UserID)
	case domainContact.OwnerNewUser:
		ownerID, err = r.spawn(ctx, strings.TrimSpace(*in.Request.Name), in.Email)
	default:
		ownerID = in.Fallback
	}
	if err != nil {
		return 0, err
	}

	r.metrics.ContactOwnerResolved(in.Operation, source.String())
	return ownerID, nil
}

func (r ownerResolver) existing(ctx context.Context, id uint) (uint, error) {
	u, err := r.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, httperr.ValidationFields("validation_failed", "The given data was invalid.",
			map[string][]string{"user_id": {"The selected user id is invalid."}})
	}
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (r ownerResolver) spawn(ctx context.Context, name, email string) (uint, error) {
	hash, err := auth.HashPassword(domainContact.PlaceholderPassword)
	if err != nil {
		return 0, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := r.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return 0, httperr.ValidationFields("validation_failed", "The given data was invalid.",
				map[string][]string{"email": {"A user with this email already exists; pass user_id to link it."}})
		}
		return 0, err
	}

	r.log.Info("user created from contact",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
	)
	return u.ID, nil
}
