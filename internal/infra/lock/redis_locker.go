package lock

import (
	"context"
	"time"

	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"

	"github.com/go-redsync/redsync/v4"
)

// RedisLocker implements service.JobLocker with a redsync mutex.
type RedisLocker struct {
	rs *redsync.Redsync
}

// NewRedisLocker creates a RedisLocker.
func NewRedisLocker(rs *redsync.Redsync) *RedisLocker {
	return &RedisLocker{rs: rs}
}

// TryLock makes a single attempt; a busy lock is reported as service.ErrLockHeld.
func (l *RedisLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (service.Unlock, error) {
	mutex := l.rs.NewMutex(name, redsync.WithExpiry(ttl), redsync.WithTries(1))

	if err := mutex.LockContext(ctx); err != nil {
		if isLockBusy(err) {
			return nil, service.ErrLockHeld
		}

		return nil, errors.Wrapf(err, "failed to acquire lock %s", name)
	}

	return func(ctx context.Context) error {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to release lock %s", name)
		}
		if !ok {
			return errors.Errorf("lock %s expired before release", name)
		}

		return nil
	}, nil
}

func isLockBusy(err error) bool {
	var takenPtr *redsync.ErrTaken
	var taken redsync.ErrTaken

	return errors.Is(err, redsync.ErrFailed) || errors.As(err, &takenPtr) || errors.As(err, &taken)
}
