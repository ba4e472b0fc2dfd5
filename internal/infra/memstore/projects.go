package memstore

import (
	"context"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ProjectRepository struct {
	s *Store
}

var _ domainProject.Repository = (*ProjectRepository)(nil)

func (r *ProjectRepository) store(p *models.Project) {
	stored := *p
	stored.User = nil
	stored.Contact = nil
	r.s.projects[p.ID] = stored
}

func (r *ProjectRepository) Create(_ context.Context, p *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextProjectID++
	now := r.s.now()
	p.ID = r.s.nextProjectID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.store(p)
	return nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id uint) (*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if p.ContactID != nil {
		if c, ok := r.s.contacts[*p.ContactID]; ok {
			p.Contact = &c
		}
	}
	return &p, nil
}

func (r *ProjectRepository) Update(_ context.Context, p *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}

	p.UpdatedAt = r.s.now()
	r.store(p)
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.projects, id)
	return nil
}

func (r *ProjectRepository) List(_ context.Context, f domainProject.Filter) ([]models.Project, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Project
	for _, p := range r.s.projects {
		if p.UserID != f.OwnerID {
			continue
		}
		if !domainProject.Matches(p, f.Search, f.Status) {
			continue
		}
		if p.ContactID != nil {
			if c, ok := r.s.contacts[*p.ContactID]; ok {
				p.Contact = &c
			}
		}
		out = append(out, p)
	}

	items, total := page(out, func(p models.Project) uint { return p.ID }, f.Page)
	return items, total, nil
}

func (r *ProjectRepository) CountByOwner(_ context.Context, ownerID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, p := range r.s.projects {
		if p.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *ProjectRepository) CountByStatus(_ context.Context, ownerID uint) (map[int]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[int]int64)
	for _, p := range r.s.projects {
		if p.UserID == ownerID {
			out[p.Status]++
		}
	}
	return out, nil
}
