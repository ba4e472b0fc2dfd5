package user

import (
	"context"

	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
)

type DeleteUser struct {
	repo    domainUser.Repository
	metrics *metrics.Metrics
}

func NewDeleteUser(repo domainUser.Repository, m *metrics.Metrics) *DeleteUser {
	return &DeleteUser{repo: repo, metrics: m}
}

// Execute refuses to delete a user who still owns contacts or projects.
func (uc *DeleteUser) Execute(ctx context.Context, principalID, userID uint) error {
	u, err := load(ctx, uc.repo, userID)
	if err != nil {
		return err
	}
	if err := ensureSelf(principalID, u.ID); err != nil {
		uc.metrics.AuthorizationDenied("user")
		return err
	}

	owned, err := uc.repo.CountOwnedRecords(ctx, u.ID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return httperr.Validation("user_owns_records",
			"The user still owns contacts or projects. Reassign or delete them first.")
	}

	return uc.repo.Delete(ctx, u.ID)
}
