package model

import (
	"time"
)

// EmployeeModel is the BSON document stored in the 'employees' collection.
type EmployeeModel struct {
	ID           string    `bson:"_id"`
	FullName     string    `bson:"full_name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	IsActive     bool      `bson:"is_active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// CollectionName returns the collection employees are stored in.
func (EmployeeModel) CollectionName() string {
	return "employees"
}
