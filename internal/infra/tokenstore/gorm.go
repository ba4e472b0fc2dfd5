package tokenstore

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

// GormStore persists revocations in the revoked_tokens table.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

var _ auth.RevocationStore = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	row := models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (s *GormStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, s.now()).
		Count(&n).Error
	return n > 0, err
}

// Purge drops rows for tokens that have expired on their own.
func (s *GormStore) Purge(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}
