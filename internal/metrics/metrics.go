package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and business collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	service string

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	ownerResolutions *prometheus.CounterVec
	authzDenials     *prometheus.CounterVec
	authEvents       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers every collector on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry, service string) *Metrics {
	m := &Metrics{
		service: service,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		ownerResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_contact_owner_resolutions_total",
				Help: "Contact writes by how the owning user was resolved",
			},
			[]string{"operation", "source"},
		),
		authzDenials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_authorization_denials_total",
				Help: "Ownership checks that rejected the principal",
			},
			[]string{"resource"},
		),
		authEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_auth_events_total",
				Help: "Authentication events by type and outcome",
			},
			[]string{"event", "outcome"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.requests,
		m.duration,
		m.ownerResolutions,
		m.authzDenials,
		m.authEvents,
	)
	return m
}

// Middleware records count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.requests.WithLabelValues(m.service, method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(m.service, method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ContactOwnerResolved(operation, source string) {
	if m == nil {
		return
	}
	m.ownerResolutions.WithLabelValues(operation, source).Inc()
}

func (m *Metrics) AuthorizationDenied(resource string) {
	if m == nil {
		return
	}
	m.authzDenials.WithLabelValues(resource).Inc()
}

func (m *Metrics) AuthEvent(event string, ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.authEvents.WithLabelValues(event, outcome).Inc()
}
