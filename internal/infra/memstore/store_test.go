package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

func strPtr(s string) *string { return &s }

func TestUsersRejectDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	require.NoError(t, users.Create(ctx, &models.User{Name: "A", Email: "a@x.test"}))
	err := users.Create(ctx, &models.User{Name: "B", Email: "a@x.test"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestContactDeleteDetachesProjects(t *testing.T) {
	ctx := context.Background()
	s := New()

	c := &models.Contact{UserID: 1, Email: "c@x.test"}
	require.NoError(t, s.Contacts().Create(ctx, c))

	p := &models.Project{UserID: 1, ContactID: &c.ID, Name: "P", Status: 1}
	require.NoError(t, s.Projects().Create(ctx, p))

	loaded, err := s.Contacts().GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Projects, 1)

	require.NoError(t, s.Contacts().Delete(ctx, c.ID))

	got, err := s.Projects().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ContactID)
	assert.Nil(t, got.Contact)
}

func TestContactListScopesAndPages(t *testing.T) {
	ctx := context.Background()
	contacts := New().Contacts()

	for i := 0; i < 5; i++ {
		require.NoError(t, contacts.Create(ctx, &models.Contact{UserID: 1, Email: "mine@x.test", Company: strPtr("Acme")}))
	}
	require.NoError(t, contacts.Create(ctx, &models.Contact{UserID: 2, Email: "theirs@x.test", Company: strPtr("Acme")}))

	items, total, err := contacts.List(ctx, domainContact.Filter{
		OwnerID: 1,
		Search:  "acme",
		Page:    pagination.Params{Page: 2, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Greater(t, items[0].ID, items[1].ID)

	_, total, err = contacts.List(ctx, domainContact.Filter{AllOwners: true, Page: pagination.Params{Page: 1, PerPage: 50}})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
}

func TestContactSearchWildcardsAreLiteral(t *testing.T) {
	ctx := context.Background()
	contacts := New().Contacts()

	require.NoError(t, contacts.Create(ctx, &models.Contact{UserID: 1, Email: "a@x.test", Company: strPtr("50% Off")}))
	require.NoError(t, contacts.Create(ctx, &models.Contact{UserID: 1, Email: "b@x.test", Company: strPtr("500 Off")}))
	require.NoError(t, contacts.Create(ctx, &models.Contact{UserID: 1, Email: "c_d@x.test"}))

	page := pagination.Params{Page: 1, PerPage: 15}
	for search, want := range map[string]int64{"50%": 1, "c_d": 1, "_": 1, "%": 1} {
		_, total, err := contacts.List(ctx, domainContact.Filter{OwnerID: 1, Search: search, Page: page})
		require.NoError(t, err)
		assert.Equal(t, want, total, search)
	}
}

func TestProjectCountByStatus(t *testing.T) {
	ctx := context.Background()
	projects := New().Projects()

	for _, st := range []int{1, 1, 2, 3} {
		require.NoError(t, projects.Create(ctx, &models.Project{UserID: 1, Name: "p", Status: st}))
	}
	require.NoError(t, projects.Create(ctx, &models.Project{UserID: 2, Name: "p", Status: 3}))

	counts, err := projects.CountByStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 2: 1, 3: 1}, counts)

	status := 1
	_, total, err := projects.List(ctx, domainProject.Filter{OwnerID: 1, Status: &status, Page: pagination.Params{Page: 1, PerPage: 15}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRevocationsExpire(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now()
	s.now = func() time.Time { return now }

	rev := s.Revocations()
	require.NoError(t, rev.Revoke(ctx, "jti-1", now.Add(time.Minute)))

	revoked, err := rev.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	revoked, err = rev.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
