package usecase

import (
	"context"
	"time"

	"gymdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string           `json:"accessToken"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	Employee    *entity.Employee `json:"employee"`
}

// CreateEmployeeInput defines a new back-office account.
type CreateEmployeeInput struct {
	FullName string
	Email    string
	Password string
	Role     entity.Role
}

// EmployeeUsecase handles employee authentication and administration.
type EmployeeUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
	CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error)

	// EnsureBootstrapAdmin creates the configured administrator when no employee exists.
	EnsureBootstrapAdmin(ctx context.Context) error
}
