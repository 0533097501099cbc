package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Employee represents an employee entity.
// A zero UUID means the identifier has not been assigned yet.
type Employee struct {
	UUID                    uuid.UUID  `json:"uuid"`
	FirstName               string     `json:"firstName"`
	LastName                string     `json:"lastName"`
	Salary                  int        `json:"salary"`
	Age                     int        `json:"age"`
	JobTitle                string     `json:"jobTitle"`
	Email                   string     `json:"email"`
	ContractHireDate        *time.Time `json:"contractHireDate"`
	ContractTerminationDate *time.Time `json:"contractTerminationDate"`
}

// FullName returns the first and last name separated by a single space.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// SetFullName assigns the first two space separated tokens of name to the first and last name.
// Names with fewer than two tokens leave the employee unchanged.
func (e *Employee) SetFullName(name string) {
	parts := strings.Split(name, " ")
	if len(parts) < 2 { //nolint:mnd // first + last
		return
	}

	e.FirstName = parts[0]
	e.LastName = parts[1]
}

// HasUUID reports whether the employee already carries an identifier.
func (e *Employee) HasUUID() bool {
	return e.UUID != uuid.Nil
}
