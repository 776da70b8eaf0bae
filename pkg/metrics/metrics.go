package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Backend fetch metrics (admin-console -> admin-api)
	BackendFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_fetch_total",
			Help: "Total number of backend JSON fetches",
		},
		[]string{"endpoint", "status"},
	)

	BackendFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_fetch_duration_seconds",
			Help:    "Backend JSON fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// View metrics
	ViewSectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_sections_total",
			Help: "Total number of view sections loaded, by outcome",
		},
		[]string{"view", "section", "status"},
	)

	ChartsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charts_rendered_total",
			Help: "Total number of chart instances constructed",
		},
		[]string{"mount"},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"service", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordBackendFetch records one backend fetch attempt
func RecordBackendFetch(endpoint string, err error, duration time.Duration) {
	BackendFetchTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	BackendFetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordViewSection records the outcome of one view section (table, KPIs, charts)
func RecordViewSection(view, section, status string) {
	ViewSectionsTotal.WithLabelValues(view, section, status).Inc()
}

// RecordChartRender counts a chart instance constructed at mount
func RecordChartRender(mount string) {
	ChartsRenderedTotal.WithLabelValues(mount).Inc()
}

// RecordDatabaseQuery records database query metrics
func RecordDatabaseQuery(service, operation string, err error, duration time.Duration) {
	DatabaseQueriesTotal.WithLabelValues(service, operation, outcome(err)).Inc()
	DatabaseQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
