// Package memstore keeps every repository in process memory. It backs
// STORAGE_DRIVER=memory and the test suites.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

type Store struct {
	mu sync.RWMutex

	users    map[uint]models.User
	contacts map[uint]models.Contact
	projects map[uint]models.Project
	revoked  map[string]time.Time

	nextUserID    uint
	nextContactID uint
	nextProjectID uint

	now func() time.Time
}

func New() *Store {
	return &Store{
		users:    make(map[uint]models.User),
		contacts: make(map[uint]models.Contact),
		projects: make(map[uint]models.Project),
		revoked:  make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{s: s}
}

func (s *Store) Projects() *ProjectRepository {
	return &ProjectRepository{s: s}
}

func (s *Store) Revocations() *RevocationStore {
	return &RevocationStore{s: s}
}

// page sorts newest first and cuts one page out of items.
func page[T any](items []T, id func(T) uint, p pagination.Params) ([]T, int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) > id(items[j]) })

	total := int64(len(items))
	if p.PerPage <= 0 {
		return items, total
	}
	start, end := p.Window(len(items))
	return items[start:end], total
}
