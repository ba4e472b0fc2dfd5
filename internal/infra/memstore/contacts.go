package memstore

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ContactRepository struct {
	s *Store
}

var _ domainContact.Repository = (*ContactRepository)(nil)

func (r *ContactRepository) Create(_ context.Context, c *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextContactID++
	now := r.s.now()
	c.ID = r.s.nextContactID
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	stored.User = nil
	stored.Projects = nil
	r.s.contacts[c.ID] = stored
	return nil
}

func (r *ContactRepository) GetByID(_ context.Context, id uint) (*models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	for _, p := range r.s.projects {
		if p.ContactID != nil && *p.ContactID == id {
			c.Projects = append(c.Projects, p)
		}
	}
	sort.Slice(c.Projects, func(i, j int) bool { return c.Projects[i].ID < c.Projects[j].ID })
	return &c, nil
}

func (r *ContactRepository) Update(_ context.Context, c *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[c.ID]; !ok {
		return domain.ErrNotFound
	}

	c.UpdatedAt = r.s.now()
	stored := *c
	stored.User = nil
	stored.Projects = nil
	r.s.contacts[c.ID] = stored
	return nil
}

// Delete detaches the contact's projects, like ON DELETE SET NULL.
func (r *ContactRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.contacts, id)

	for pid, p := range r.s.projects {
		if p.ContactID != nil && *p.ContactID == id {
			p.ContactID = nil
			r.s.projects[pid] = p
		}
	}
	return nil
}

func (r *ContactRepository) List(_ context.Context, f domainContact.Filter) ([]models.Contact, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Contact
	for _, c := range r.s.contacts {
		if !f.AllOwners && c.UserID != f.OwnerID {
			continue
		}
		if domainContact.Matches(c, f.Search) {
			out = append(out, c)
		}
	}

	items, total := page(out, func(c models.Contact) uint { return c.ID }, f.Page)
	return items, total, nil
}

func (r *ContactRepository) CountByOwner(_ context.Context, ownerID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, c := range r.s.contacts {
		if c.UserID == ownerID {
			n++
		}
	}
	return n, nil
}
