package employees

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/UnknownOlympus/employee-api/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	staff := NewStaff(logger, nil, nil)

	staff.initLogger("Employee.Test").Info("message")

	assert.Contains(t, logBuf.String(), "op=Employee.Test")
	assert.Contains(t, logBuf.String(), "division=employee")
}

func TestCreateEmployee_LogsCreation(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	staff := NewStaff(logger, repository.NewEmployeeRepository(testMetrics), testMetrics)

	employee, err := staff.CreateEmployee(t.Context(), models.Employee{FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)

	assert.Contains(t, logBuf.String(), "employee created")
	assert.Contains(t, logBuf.String(), "uuid="+employee.UUID.String())
	assert.Contains(t, logBuf.String(), `fullname="Ann Lee"`)
}
