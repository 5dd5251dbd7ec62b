package logger

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMonitor records request and face match metrics.
type PrometheusMonitor struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	latency          *prometheus.HistogramVec
	biometricOutcome *prometheus.CounterVec
}

func NewPrometheusMonitor() *PrometheusMonitor {
	m := &PrometheusMonitor{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "certverify",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "certverify",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		biometricOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "certverify",
			Name:      "face_match_total",
			Help:      "Face match gate decisions by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.biometricOutcome)
	return m
}

// RequestMetricMiddleware records every request handled by gin.
func (m *PrometheusMonitor) RequestMetricMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.latency.WithLabelValues(route, ctx.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// RecordFaceMatch counts one gate decision. outcome is accepted, rejected,
// unenrolled or malformed.
func (m *PrometheusMonitor) RecordFaceMatch(outcome string) {
	m.biometricOutcome.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry for scraping.
func (m *PrometheusMonitor) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
