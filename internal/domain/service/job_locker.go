package service

import (
	"context"
	"time"

	"gymdesk/internal/errors"
)

// ErrLockHeld is returned when another process already holds the job lock.
var ErrLockHeld = errors.New("job lock held by another process")

// Unlock releases a lock obtained from JobLocker.
type Unlock func(ctx context.Context) error

// JobLocker guards scheduled jobs so only one replica runs them at a time.
type JobLocker interface {
	// TryLock acquires the named lock for at most ttl, or returns ErrLockHeld.
	TryLock(ctx context.Context, name string, ttl time.Duration) (Unlock, error)
}
