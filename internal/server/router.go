package server

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/employee-api/internal/metrics"
)

// BasePath is the prefix of every employee API route.
const BasePath = "/api/v1/employee"

// NewRouter registers the employee API routes. The collection is served both with and
// without a trailing slash.
func NewRouter(log *slog.Logger, staff EmployeeService, appMetrics *metrics.Metrics) http.Handler {
	handler := NewEmployeeHandler(log, staff, appMetrics)
	mux := http.NewServeMux()

	list := instrument(appMetrics, "list_employees", http.HandlerFunc(handler.List))
	get := instrument(appMetrics, "get_employee", http.HandlerFunc(handler.Get))
	create := instrument(appMetrics, "create_employee", http.HandlerFunc(handler.Create))

	mux.Handle("GET "+BasePath, list)
	mux.Handle("GET "+BasePath+"/{$}", list)
	mux.Handle("GET "+BasePath+"/{uuid}", get)
	mux.Handle("POST "+BasePath, create)
	mux.Handle("POST "+BasePath+"/{$}", create)

	return logRequests(log, mux)
}
