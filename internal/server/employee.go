package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/employee-api/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// EmployeeService is the part of the employees service the HTTP layer depends on.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, identifier uuid.UUID) (models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
}

// EmployeeHandler translates HTTP requests into EmployeeService calls.
type EmployeeHandler struct {
	log     *slog.Logger
	staff   EmployeeService
	metrics *metrics.Metrics
}

func NewEmployeeHandler(log *slog.Logger, staff EmployeeService, metrics *metrics.Metrics) *EmployeeHandler {
	return &EmployeeHandler{
		log:     log.With(slog.String("division", "http")),
		staff:   staff,
		metrics: metrics,
	}
}

// List handles GET /api/v1/employee/ and always answers with a JSON array.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.staff.ListEmployees(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, http.StatusOK, employees)
}

// Get handles GET /api/v1/employee/{uuid}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier, err := uuid.Parse(r.PathValue("uuid"))
	if err != nil {
		h.writeBadRequest(w, r, "invalid employee uuid: "+err.Error())
		return
	}

	employee, err := h.staff.GetEmployee(r.Context(), identifier)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Create handles POST /api/v1/employee/. The uuid field of the body is optional.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		h.writeBadRequest(w, r, "invalid request body: "+err.Error())
		return
	}

	created, err := h.staff.CreateEmployee(r.Context(), employee)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *EmployeeHandler) writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	h.log.DebugContext(r.Context(), "bad request", "path", r.URL.Path, "reason", message)
	h.metrics.RequestErrors.WithLabelValues("bad_request").Inc()
	writeError(w, http.StatusBadRequest, message)
}

func (h *EmployeeHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := statusFromError(err)
	h.metrics.RequestErrors.WithLabelValues(kind).Inc()

	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, sl.Err(err))
		writeError(w, status, internalErrorMessage)
		return
	}

	writeError(w, status, err.Error())
}
