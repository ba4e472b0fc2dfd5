package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry(), "crm-api")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/contacts/:id", func(c *gin.Context) { c.Status(http.StatusForbidden) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contacts/9", nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("crm-api", http.MethodGet, "/contacts/:id", "403"))
	assert.Equal(t, float64(3), got)
}

func TestBusinessCounters(t *testing.T) {
	m := New(prometheus.NewRegistry(), "crm-api")

	m.ContactOwnerResolved("create", "new_user")
	m.AuthorizationDenied("project")
	m.AuthorizationDenied("project")
	m.AuthEvent("login", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ownerResolutions.WithLabelValues("create", "new_user")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.authzDenials.WithLabelValues("project")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.authEvents.WithLabelValues("login", "failure")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ContactOwnerResolved("create", "default")
		m.AuthorizationDenied("contact")
		m.AuthEvent("logout", true)
	})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New(prometheus.NewRegistry(), "crm-api")
	m.AuthEvent("register", true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "crm_auth_events_total")
}
