package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type EmployeeCounter interface {
	CountEmployees(ctx context.Context) (int, error)
}

type HealthChecker struct {
	store EmployeeCounter
	log   *slog.Logger
}

func NewHealthChecker(store EmployeeCounter, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		store: store,
		log:   log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]any)
	overallStatus := http.StatusOK

	count, err := h.store.CountEmployees(req.Context())
	if err != nil {
		status["store"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: store", "error", err)
	} else {
		status["store"] = "ok"
		status["employees"] = count
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
