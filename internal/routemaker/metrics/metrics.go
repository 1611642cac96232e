// Package metrics holds the Prometheus collectors RouteMaker exports on
// /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routemaker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	invitationEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routemaker_invitation_events_total",
			Help: "Invitation lifecycle transitions by event",
		},
		[]string{"event"},
	)
	emailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routemaker_email_deliveries_total",
			Help: "Outbound email attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
	geocodeResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routemaker_geocode_results_total",
			Help: "Geocoding lookups by outcome (found, not_found, error)",
		},
		[]string{"outcome"},
	)
	importedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routemaker_location_import_rows_total",
			Help: "Rows processed by location import by outcome",
		},
		[]string{"outcome"},
	)
)

// Invitation events.
const (
	InvitationCreated  = "created"
	InvitationResent   = "resent"
	InvitationAccepted = "accepted"
	InvitationRevoked  = "revoked"
	InvitationExpired  = "expired"
)

// Geocode outcomes.
const (
	GeocodeFound    = "found"
	GeocodeNotFound = "not_found"
	GeocodeError    = "error"
)

// Middleware records request duration labelled by the matched route pattern
// rather than the raw path, so IDs do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }

func RecordInvitation(event string) {
	invitationEvents.WithLabelValues(event).Add(1)
}

// RecordInvitations adds n events at once, e.g. a housekeeping sweep.
func RecordInvitations(event string, n int64) {
	if n > 0 {
		invitationEvents.WithLabelValues(event).Add(float64(n))
	}
}

func RecordEmail(kind string, err error) {
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	emailDeliveries.WithLabelValues(kind, outcome).Inc()
}

func RecordGeocode(outcome string) {
	geocodeResults.WithLabelValues(outcome).Inc()
}

func RecordImport(success, failed int) {
	importedRows.WithLabelValues("success").Add(float64(success))
	importedRows.WithLabelValues("failed").Add(float64(failed))
}
