package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes request counters and latency histograms for the HTTP API,
// a histogram for store operations, and counters and a gauge for employees.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StoreOpDuration     *prometheus.HistogramVec
	EmployeesCreated    prometheus.Counter
	EmployeesStored     prometheus.Gauge
	RequestErrors       *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_api_http_requests_total",
			Help: "Total number of HTTP requests handled by the employee API.",
		}, []string{"handler", "code", "method"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the employee API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler", "code", "method"}),
		StoreOpDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_api_store_operation_duration_seconds",
			Help:    "Duration of in-memory store operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}), // operation: 'list_employees', 'get_employee', 'save_employee'
		EmployeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employee_api_employees_created_total",
			Help: "Total number of employees created through the API.",
		}),
		EmployeesStored: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employee_api_employees",
			Help: "Number of employees currently held in the store.",
		}),
		RequestErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_api_request_errors_total",
			Help: "Total number of failed requests by error kind.",
		}, []string{"kind"}),
	}

	metrics.RequestErrors.WithLabelValues("not_found")
	metrics.RequestErrors.WithLabelValues("already_exists")
	metrics.RequestErrors.WithLabelValues("bad_request")
	metrics.RequestErrors.WithLabelValues("internal")

	return metrics
}
