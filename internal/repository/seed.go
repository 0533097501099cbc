package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/google/uuid"
)

// MockEmployees returns the employees the store is populated with on startup.
// Identifiers are freshly generated on every call.
func MockEmployees(now time.Time) []models.Employee {
	hired := now.UTC()

	return []models.Employee{
		{
			UUID:             uuid.New(),
			FirstName:        "John",
			LastName:         "Doe",
			Salary:           75000, //nolint:mnd // mock data
			Age:              25,    //nolint:mnd // mock data
			JobTitle:         "Developer",
			Email:            "doe@company.com",
			ContractHireDate: &hired,
		},
		{
			UUID:             uuid.New(),
			FirstName:        "Jane",
			LastName:         "Smith",
			Salary:           60000, //nolint:mnd // mock data
			Age:              23,    //nolint:mnd // mock data
			JobTitle:         "Designer",
			Email:            "smith@company.com",
			ContractHireDate: &hired,
		},
	}
}

// Seed saves the given employees into the repository.
func Seed(ctx context.Context, repo EmployeeRepoIface, employees []models.Employee) error {
	for _, employee := range employees {
		if _, err := repo.SaveEmployee(ctx, employee); err != nil {
			return fmt.Errorf("failed to seed employee '%s': %w", employee.FullName(), err)
		}
	}

	return nil
}
