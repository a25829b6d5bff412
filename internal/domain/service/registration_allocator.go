package service

import (
	"context"

	"gymdesk/internal/domain/entity"
)

// RegistrationAllocator hands out unique member registration numbers.
type RegistrationAllocator interface {
	// Allocate returns the requested number if it is free, or the next
	// generated number when raw is blank or a placeholder.
	Allocate(ctx context.Context, raw string, memberType entity.MemberType) (string, error)
}
