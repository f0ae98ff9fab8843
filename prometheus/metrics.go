package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NihalDR/Lingam-Aabharanam/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Repository operation counters
	ProductOperationsCounter     prometheus.CounterVec
	AppointmentOperationsCounter prometheus.CounterVec
	TestimonialOperationsCounter prometheus.CounterVec
	CartOperationsCounter        prometheus.CounterVec

	// Slot availability queries
	SlotQueriesCounter prometheus.Counter

	// Checkout hand-off links generated
	CheckoutLinksCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	AppointmentOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_appointment_operations_total",
			Help: "Total number of appointment operations",
		},
		[]string{"operation"},
	)

	TestimonialOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_testimonial_operations_total",
			Help: "Total number of testimonial operations",
		},
		[]string{"operation"},
	)

	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	SlotQueriesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_slot_queries_total",
			Help: "Total number of appointment slot availability queries",
		},
	)

	CheckoutLinksCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_links_total",
			Help: "Total number of checkout hand-off links generated",
		},
	)
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAppointmentOperation increments the counter for appointment operations
func RecordAppointmentOperation(operation string) {
	AppointmentOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordTestimonialOperation increments the counter for testimonial operations
func RecordTestimonialOperation(operation string) {
	TestimonialOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	CartOperationsCounter.WithLabelValues(operation).Inc()
}
