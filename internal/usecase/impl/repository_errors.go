package impl

import (
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/errors"
)

// mapRepoError translates repository sentinels into AppErrors. Anything the
// repository did not classify surfaces as a database failure.
func mapRepoError(err error, op string) error {
	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrMemberNotFound):
		return domainerrors.ErrMemberNotFound
	case errors.Is(err, repository.ErrMemberVersionConflict):
		return domainerrors.ErrConcurrentModification
	case errors.Is(err, repository.ErrDuplicatePhone):
		return domainerrors.ErrDuplicateIdentifier.WithDetails("phone number is already registered to another member")
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrDuplicateIdentifier.WithDetails("email is already registered to another member")
	case errors.Is(err, repository.ErrDuplicateRegistrationNumber):
		return domainerrors.ErrDuplicateIdentifier.WithDetails("registration number is already taken")
	case errors.Is(err, repository.ErrPackageTemplateNotFound):
		return domainerrors.ErrPackageTemplateNotFound
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return domainerrors.ErrEmployeeNotFound
	case errors.Is(err, repository.ErrDuplicateEmployeeEmail):
		return domainerrors.ErrEmployeeAlreadyExists
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to "+op)
	}
}
