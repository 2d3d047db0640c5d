package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the tournament
// API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	catchSubmitted  *prometheus.CounterVec
	catchDecided    *prometheus.CounterVec
	leaderboardHits *prometheus.CounterVec
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	catchSubmitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catches_submitted_total",
		Help: "Total catch entries submitted, by division",
	}, []string{"division"})

	catchDecided := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catches_decided_total",
		Help: "Total catch entries approved or rejected",
	}, []string{"status"})

	leaderboardHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leaderboard_queries_total",
		Help: "Total leaderboard snapshot queries, by division",
	}, []string{"division"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, catchSubmitted, catchDecided, leaderboardHits, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		catchSubmitted:  catchSubmitted,
		catchDecided:    catchDecided,
		leaderboardHits: leaderboardHits,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCatchSubmitted counts an accepted submission.
func (m *MetricsService) RecordCatchSubmitted(division string) {
	if m == nil {
		return
	}
	m.catchSubmitted.WithLabelValues(division).Inc()
}

// RecordCatchDecided counts an approval or rejection.
func (m *MetricsService) RecordCatchDecided(status string) {
	if m == nil {
		return
	}
	m.catchDecided.WithLabelValues(status).Inc()
}

// RecordLeaderboardQuery counts a standings snapshot.
func (m *MetricsService) RecordLeaderboardQuery(division string) {
	if m == nil {
		return
	}
	m.leaderboardHits.WithLabelValues(division).Inc()
}
