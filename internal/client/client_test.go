package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/config"
	"github.com/BruksfildServices01/crm-api/internal/infra/memstore"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/routes"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memstore.New()
	cfg := &config.Config{
		JWTSecret:                    "client-test",
		JWTTTL:                       time.Hour,
		AllowUnverifiedPasswordReset: true,
		DefaultPerPage:               15,
	}
	srv := httptest.NewServer(routes.NewRouter(routes.Deps{
		Config:      cfg,
		Users:       store.Users(),
		Contacts:    store.Contacts(),
		Projects:    store.Projects(),
		Revocations: store.Revocations(),
		Metrics:     metrics.New(prometheus.NewRegistry(), "crm-client-test"),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func ptr[T any](v T) *T { return &v }

func register(t *testing.T, c *Client, email string) *AuthResult {
	t.Helper()
	res, err := c.Register(context.Background(), RegisterInput{
		Name:                 "Alice",
		Email:                email,
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	require.NoError(t, err)
	return res
}

func TestLoadSessionMissingFile(t *testing.T) {
	s, err := LoadSession(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
}

func TestLoadSessionRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadSession(path)
	assert.Error(t, err)
}

func TestLoginPersistsSession(t *testing.T) {
	srv := newServer(t)
	path := filepath.Join(t.TempDir(), "crm", "session.json")

	register(t, New(srv.URL, nil), "alice@example.com")

	s, err := LoadSession(path)
	require.NoError(t, err)
	c := New(srv.URL, s)

	res, err := c.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, res.Token, reloaded.Token())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, "alice@example.com", reloaded.User().Email)

	me, err := New(srv.URL, reloaded).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, me.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, nil)
	register(t, c, "alice@example.com")

	_, err := New(srv.URL, nil).Login(context.Background(), "alice@example.com", "wrong-pass")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "invalid_credentials", apiErr.Code)
	assert.Contains(t, apiErr.Errors, "email")
}

func TestUnauthorizedClearsSession(t *testing.T) {
	srv := newServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	s.Set("not-a-token", nil)
	require.NoError(t, s.Save())

	_, err = New(srv.URL, s).Me(context.Background())
	assert.True(t, IsUnauthenticated(err))
	assert.False(t, s.Authenticated())

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestLogoutRevokesToken(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, nil)
	res := register(t, c, "alice@example.com")

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.Session().Authenticated())

	stale := &Session{}
	stale.Set(res.Token, res.User)
	_, err := New(srv.URL, stale).Me(context.Background())
	assert.True(t, IsUnauthenticated(err))
}

func TestContactsAndProjects(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	c := New(srv.URL, nil)
	me := register(t, c, "alice@example.com")

	for _, email := range []string{"a@acme.test", "b@acme.test", "c@other.test"} {
		_, err := c.CreateContact(ctx, ContactInput{Email: ptr(email), Company: ptr("Acme")})
		require.NoError(t, err)
	}

	page, err := c.ListContacts(ctx, ListParams{Search: "acme.test", PerPage: 1})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(2), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.LastPage)
	assert.Equal(t, me.User.ID, page.Data[0].UserID)

	contact := page.Data[0]
	updated, err := c.UpdateContact(ctx, contact.ID, ContactInput{PhoneNumber: ptr("555-0100")})
	require.NoError(t, err)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "555-0100", *updated.PhoneNumber)
	assert.Equal(t, contact.Email, updated.Email)

	p, err := c.CreateProject(ctx, ProjectInput{Name: "Website", Status: 1, ContactID: &contact.ID})
	require.NoError(t, err)
	assert.Equal(t, "To Do", p.StatusText)

	p, err = c.UpdateProject(ctx, p.ID, ProjectInput{Name: "Website v2", Status: 2})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", p.StatusText)
	assert.Nil(t, p.ContactID)

	projects, err := c.ListProjects(ctx, ListParams{Status: 2})
	require.NoError(t, err)
	require.Len(t, projects.Data, 1)
	assert.Equal(t, "Website v2", projects.Data[0].Name)

	stats, err := c.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalContacts)
	assert.Equal(t, int64(1), stats.ProjectsByStatus["2"])

	require.NoError(t, c.DeleteProject(ctx, p.ID))
	_, err = c.GetProject(ctx, p.ID)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestListParamsValues(t *testing.T) {
	q := ListParams{Search: "acme", Status: 3, All: true, Page: 2}.values()

	assert.Equal(t, "acme", q.Get("search"))
	assert.Equal(t, "3", q.Get("status"))
	assert.Equal(t, "1", q.Get("all"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Empty(t, q.Get("per_page"))
	assert.Empty(t, ListParams{}.values())
}
