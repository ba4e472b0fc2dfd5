package user

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/imaging"
	"github.com/BruksfildServices01/crm-api/internal/infra/storage"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type UploadAvatar struct {
	repo    domainUser.Repository
	store   storage.ObjectStore
	maxPx   int
	metrics *metrics.Metrics
}

func NewUploadAvatar(
	repo domainUser.Repository,
	store storage.ObjectStore,
	maxPx int,
	m *metrics.Metrics,
) *UploadAvatar {
	return &UploadAvatar{repo: repo, store: store, maxPx: maxPx, metrics: m}
}

// Execute transcodes the upload to WebP, stores it and points the user's
// avatar_url at it.
func (uc *UploadAvatar) Execute(
	ctx context.Context,
	principalID uint,
	userID uint,
	file io.Reader,
) (*models.User, error) {

	u, err := load(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}
	if err := ensureSelf(principalID, u.ID); err != nil {
		uc.metrics.AuthorizationDenied("user")
		return nil, err
	}

	body, err := imaging.NormalizeAvatar(file, uc.maxPx)
	if errors.Is(err, imaging.ErrUnsupportedImage) {
		return nil, httperr.ValidationFields("validation_failed", "The given data was invalid.",
			map[string][]string{"avatar": {"The avatar must be a JPEG, PNG or WebP image."}})
	}
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", u.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imaging.ContentTypeWebP, body)
	if err != nil {
		return nil, err
	}

	u.AvatarURL = &url
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
