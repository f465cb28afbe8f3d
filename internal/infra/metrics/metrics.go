// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Inbound HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beltempo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beltempo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// Outbound calls to geolocation, geocoding, weather and summary providers
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beltempo_upstream_calls_total",
			Help: "Total number of calls to upstream providers",
		},
		[]string{"upstream", "status"},
	)

	UpstreamCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beltempo_upstream_call_duration_seconds",
			Help:    "Upstream call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"upstream"},
	)

	UpstreamUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "beltempo_upstream_up",
			Help: "Whether the last probe reached the upstream (1) or not (0)",
		},
		[]string{"upstream"},
	)

	// Scheduler
	SchedulerTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beltempo_scheduler_tasks_total",
			Help: "Total number of scheduled tasks executed",
		},
		[]string{"task", "status"},
	)

	SchedulerTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beltempo_scheduler_task_duration_seconds",
			Help:    "Scheduled task duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"task"},
	)

	// Dashboards
	DashboardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beltempo_dashboards_total",
			Help: "Total dashboards built by location source and stage availability",
		},
		[]string{"location_source", "forecast", "summary"},
	)
)

// Handler serves the default registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an inbound request. path is the route template, not the raw URL.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamCall records one outbound call. status 0 means the call never got an answer.
func RecordUpstreamCall(upstream string, status int, duration time.Duration) {
	UpstreamCallsTotal.WithLabelValues(upstream, strconv.Itoa(status)).Inc()
	UpstreamCallDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// RecordUpstreamProbe sets the reachability gauge of an upstream
func RecordUpstreamProbe(upstream string, up bool) {
	value := 0.0
	if up {
		value = 1
	}
	UpstreamUp.WithLabelValues(upstream).Set(value)
}

// RecordSchedulerTask records scheduler task execution
func RecordSchedulerTask(task, status string, duration time.Duration) {
	SchedulerTasksTotal.WithLabelValues(task, status).Inc()
	SchedulerTaskDuration.WithLabelValues(task).Observe(duration.Seconds())
}

// RecordDashboard counts a built dashboard
func RecordDashboard(locationSource string, forecastAvailable, summaryAvailable bool) {
	DashboardsTotal.WithLabelValues(locationSource, availability(forecastAvailable), availability(summaryAvailable)).Inc()
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}
