package memstore

import (
	"context"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type UserRepository struct {
	s *Store
}

var _ domainUser.Repository = (*UserRepository)(nil)

func (r *UserRepository) emailTaken(email string, except uint) bool {
	for _, u := range r.s.users {
		if u.Email == email && u.ID != except {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(u.Email, 0) {
		return domain.ErrDuplicate
	}

	r.s.nextUserID++
	now := r.s.now()
	u.ID = r.s.nextUserID
	u.CreatedAt = now
	u.UpdatedAt = now
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrDuplicate
	}

	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepository) List(_ context.Context, f domainUser.Filter) ([]models.User, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.User
	for _, u := range r.s.users {
		if domainUser.Matches(u, f.Search) {
			out = append(out, u)
		}
	}

	items, total := page(out, func(u models.User) uint { return u.ID }, f.Page)
	return items, total, nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.users)), nil
}

func (r *UserRepository) CountOwnedRecords(_ context.Context, id uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, c := range r.s.contacts {
		if c.UserID == id {
			n++
		}
	}
	for _, p := range r.s.projects {
		if p.UserID == id {
			n++
		}
	}
	return n, nil
}
