// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	ImagesUploaded    *prometheus.CounterVec
	ImageUploadBytes  prometheus.Counter
	ImagesRejected    *prometheus.CounterVec
	ImagesDeleted     prometheus.Counter
	RateLimitRejected prometheus.Counter
}

// New creates and registers all metrics on reg. Pass prometheus.NewRegistry()
// in tests to avoid duplicate registration on the default registry.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mythos_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mythos_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ImagesUploaded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mythos_images_uploaded_total",
			Help: "Total number of stored image uploads by MIME type.",
		}, []string{"mime_type"}),
		ImageUploadBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "mythos_image_upload_bytes_total",
			Help: "Total bytes of stored image uploads.",
		}),
		ImagesRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mythos_images_rejected_total",
			Help: "Total number of rejected image uploads by reason.",
		}, []string{"reason"}),
		ImagesDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "mythos_images_deleted_total",
			Help: "Total number of deleted image records.",
		}),
		RateLimitRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "mythos_rate_limit_rejected_total",
			Help: "Total number of requests rejected by the rate limiter.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// ImageUploaded records a stored upload.
func (m *Metrics) ImageUploaded(mimeType string, size int64) {
	m.ImagesUploaded.WithLabelValues(mimeType).Inc()
	m.ImageUploadBytes.Add(float64(size))
}

// ImageRejected records an upload refused before storage.
func (m *Metrics) ImageRejected(reason string) {
	m.ImagesRejected.WithLabelValues(reason).Inc()
}

// ImageDeleted records a removed image record.
func (m *Metrics) ImageDeleted() {
	m.ImagesDeleted.Inc()
}

// RateLimited records a request rejected by the rate limiter.
func (m *Metrics) RateLimited() {
	m.RateLimitRejected.Inc()
}
