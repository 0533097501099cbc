package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/google/uuid"
)

// ListEmployees returns a copy of every stored employee in insertion order.
func (r *MemoryRepository) ListEmployees(_ context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Employee, 0, len(r.order))
	for _, identifier := range r.order {
		result = append(result, r.employees[identifier])
	}

	return result, nil
}

// GetEmployeeByUUID retrieves an employee by its identifier.
func (r *MemoryRepository) GetEmployeeByUUID(_ context.Context, identifier uuid.UUID) (models.Employee, error) {
	defer r.observe("get_employee", time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.employees[identifier]
	if !ok {
		return models.Employee{}, fmt.Errorf("%w with uuid: %s", ErrEmployeeNotFound, identifier)
	}

	return employee, nil
}

// SaveEmployee inserts a new employee. A missing identifier is generated, an identifier
// that is already stored is rejected and the store is left untouched.
func (r *MemoryRepository) SaveEmployee(_ context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee", time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	if !employee.HasUUID() {
		employee.UUID = uuid.New()
	}

	if _, exists := r.employees[employee.UUID]; exists {
		return models.Employee{}, fmt.Errorf("%w: %s", ErrEmployeeAlreadyExists, employee.UUID)
	}

	r.employees[employee.UUID] = employee
	r.order = append(r.order, employee.UUID)

	return employee, nil
}

// CountEmployees returns the number of stored employees.
func (r *MemoryRepository) CountEmployees(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.employees), nil
}

func (r *MemoryRepository) observe(operation string, startTime time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.StoreOpDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
}
