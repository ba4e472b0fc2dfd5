package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
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

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseID(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPassword(t *testing.T) {
	authPassword = ""
	t.Cleanup(func() { authPassword = "" })

	got, err := readPassword(strings.NewReader("s3cret\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)

	_, err = readPassword(strings.NewReader(""))
	assert.Error(t, err)

	authPassword = "from-flag"
	got, err = readPassword(strings.NewReader("s3cret\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", got)
}

func TestCommandFlow(t *testing.T) {
	store := memstore.New()
	srv := httptest.NewServer(routes.NewRouter(routes.Deps{
		Config: &config.Config{
			JWTSecret:      "cli-test",
			JWTTTL:         time.Hour,
			DefaultPerPage: 15,
		},
		Users:       store.Users(),
		Contacts:    store.Contacts(),
		Projects:    store.Projects(),
		Revocations: store.Revocations(),
		Metrics:     metrics.New(prometheus.NewRegistry(), "crm-cli-test"),
	}))
	defer srv.Close()

	session := filepath.Join(t.TempDir(), "session.json")
	exec := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append([]string{"--server", srv.URL, "--session", session}, args...))
		require.NoError(t, rootCmd.Execute(), out.String())
		return out.String()
	}

	out := exec("register", "--name", "Alice", "--email", "alice@example.com", "--password", "secret123")
	assert.Contains(t, out, "alice@example.com")
	assert.FileExists(t, session)

	exec("contacts", "create", "--email", "bob@acme.test", "--company", "Acme")

	out = exec("contacts", "list")
	assert.Contains(t, out, "bob@acme.test")
	assert.Contains(t, out, "page 1 of 1 (1 total)")

	out = exec("stats")
	assert.Contains(t, out, "contacts")
	assert.Contains(t, out, "To Do")

	out = exec("logout")
	assert.Contains(t, out, "Logged out.")
	assert.NoFileExists(t, session)
}
