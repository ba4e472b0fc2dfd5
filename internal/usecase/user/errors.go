package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// ErrEmailTaken is what callers see for a unique-email violation.
var ErrEmailTaken = httperr.ValidationFields("validation_failed", "The given data was invalid.",
	map[string][]string{"email": {"The email has already been taken."}})

var errEmailDomain = httperr.ValidationFields("validation_failed", "The given data was invalid.",
	map[string][]string{"email": {"The email domain does not accept mail."}})

func load(ctx context.Context, repo domainUser.Repository, id uint) (*models.User, error) {
	u, err := repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("user_not_found", "User not found.")
	}
	return u, err
}

func translate(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return ErrEmailTaken
	}
	return err
}

// ensureSelf allows changes to a user record only by that user.
func ensureSelf(principalID, userID uint) error {
	if principalID == 0 || principalID != userID {
		return httperr.Forbidden("user_forbidden", "Unauthorized")
	}
	return nil
}
