package memstore

import (
	"context"
	"time"

	"github.com/BruksfildServices01/crm-api/internal/auth"
)

type RevocationStore struct {
	s *Store
}

var _ auth.RevocationStore = (*RevocationStore)(nil)

func (r *RevocationStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.revoked[jti] = expiresAt
	return nil
}

func (r *RevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	exp, ok := r.s.revoked[jti]
	if !ok {
		return false, nil
	}
	if r.s.now().After(exp) {
		delete(r.s.revoked, jti)
		return false, nil
	}
	return true, nil
}
