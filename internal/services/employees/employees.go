package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/employee-api/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/UnknownOlympus/employee-api/internal/repository"
	"github.com/google/uuid"
)

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// ListEmployees returns every employee held by the repository.
func (s *Staff) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.ListEmployees"
	log := s.initLogger(opn)

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.DebugContext(ctx, "employees listed", "count", len(employees))

	return employees, nil
}

// GetEmployee returns the employee with the given identifier.
// A missing employee is reported with repository.ErrEmployeeNotFound.
func (s *Staff) GetEmployee(ctx context.Context, identifier uuid.UUID) (models.Employee, error) {
	const opn = "Employee.GetEmployee"
	log := s.initLogger(opn)

	employee, err := s.repo.GetEmployeeByUUID(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			log.DebugContext(ctx, "employee does not exist", sl.UUID(identifier))
			return models.Employee{}, err
		}
		return models.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// CreateEmployee stores a new employee, generating its identifier when it is missing.
// An identifier collision is reported with repository.ErrEmployeeAlreadyExists.
func (s *Staff) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.CreateEmployee"
	log := s.initLogger(opn)

	created, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeAlreadyExists) {
			log.InfoContext(ctx, "employee already exists, skipped", sl.UUID(employee.UUID))
			return models.Employee{}, err
		}
		return models.Employee{}, fmt.Errorf("failed to save new employee '%s': %w", employee.FullName(), err)
	}

	s.metrics.EmployeesCreated.Inc()
	s.refreshGauge(ctx, log)

	log.InfoContext(ctx, "employee created", sl.UUID(created.UUID), "fullname", created.FullName())

	return created, nil
}

// SyncGauge sets the employees gauge to the current size of the repository.
func (s *Staff) SyncGauge(ctx context.Context) {
	s.refreshGauge(ctx, s.initLogger("Employee.SyncGauge"))
}

func (s *Staff) refreshGauge(ctx context.Context, log *slog.Logger) {
	count, err := s.repo.CountEmployees(ctx)
	if err != nil {
		log.WarnContext(ctx, "failed to count employees", sl.Err(err))
		return
	}
	s.metrics.EmployeesStored.Set(float64(count))
}
