package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is what a validated access token says about its bearer.
type Claims struct {
	EmployeeID uuid.UUID
	Roles      []string
	ExpiresAt  time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an employee.
	GenerateAccessToken(employeeID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
