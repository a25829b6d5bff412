package repository

import "context"

// RegistrationCounterRepository keeps one monotonically increasing counter per
// registration prefix. Counters never move backwards, so numbers freed by a
// deleted member are not handed out again.
type RegistrationCounterRepository interface {
	// NextRegistrationValue atomically increments the prefix counter and returns the new value.
	NextRegistrationValue(ctx context.Context, prefix string) (int64, error)

	// RaiseRegistrationCounter moves the prefix counter up to at least value. Lower values are ignored.
	RaiseRegistrationCounter(ctx context.Context, prefix string, value int64) error
}
