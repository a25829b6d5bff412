package repository

import (
	"context"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for employee persistence.
var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployeeEmail is returned when the email is already used by another employee.
	ErrDuplicateEmployeeEmail = errors.New("employee email already registered")
)

// EmployeeRepository defines the persistence operations for back-office accounts.
type EmployeeRepository interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, employee *entity.Employee) error

	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindEmployeeByEmail retrieves an employee by lower-cased email.
	FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// ListEmployees returns every employee ordered by name.
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)

	// CountEmployees returns the number of stored employees.
	CountEmployees(ctx context.Context) (int64, error)
}
