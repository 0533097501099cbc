package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee uuid already exists")
)

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByUUID(ctx context.Context, identifier uuid.UUID) (models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	CountEmployees(ctx context.Context) (int, error)
}

// MemoryRepository keeps employees in process memory. Records are stored by value
// and listed in insertion order.
type MemoryRepository struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]models.Employee
	order     []uuid.UUID
	metrics   *metrics.Metrics
}

func NewEmployeeRepository(metrics *metrics.Metrics) *MemoryRepository {
	return &MemoryRepository{
		employees: make(map[uuid.UUID]models.Employee),
		metrics:   metrics,
	}
}
