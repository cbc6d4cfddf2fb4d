package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/events"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mergington",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mergington",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path"},
	)

	enrollmentChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Subsystem: "enrollment",
			Name:      "changes_total",
			Help:      "Committed enrollment changes.",
		},
		[]string{"kind"},
	)

	enrollmentRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Subsystem: "enrollment",
			Name:      "rejections_total",
			Help:      "Enrollment requests rejected by a business rule.",
		},
		[]string{"reason"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		enrollmentChanges,
		enrollmentRejections,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordChange is an events.Listener counting committed enrollment changes.
func RecordChange(c events.Change) {
	enrollmentChanges.WithLabelValues(string(c.Kind)).Inc()
}

// RecordRejection counts a business-rule rejection.
func RecordRejection(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	enrollmentRejections.WithLabelValues(reason).Inc()
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// canonicalPath collapses activity names so label cardinality stays bounded.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	switch {
	case parts[0] == "static":
		return "/static"
	case parts[0] == "activities" && len(parts) >= 3:
		return "/activities/:name/" + parts[len(parts)-1]
	case parts[0] == "admin" && len(parts) >= 2 && parts[1] == "activities":
		if len(parts) == 2 {
			return "/admin/activities"
		}
		if len(parts) == 3 {
			return "/admin/activities/:name"
		}
		return "/admin/activities/:name/" + parts[len(parts)-1]
	default:
		return "/" + parts[0]
	}
}
