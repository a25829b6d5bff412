package lock

import (
	"context"
	"sync"
	"time"

	"gymdesk/internal/domain/service"
)

// MemoryLocker implements service.JobLocker for a single process.
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	now   func() time.Time
	token uint64
	owner map[string]uint64
}

// NewMemoryLocker creates a MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		held:  make(map[string]time.Time),
		owner: make(map[string]uint64),
		now:   time.Now,
	}
}

// TryLock acquires name until ttl elapses or the returned Unlock is called.
func (l *MemoryLocker) TryLock(_ context.Context, name string, ttl time.Duration) (service.Unlock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if until, ok := l.held[name]; ok && now.Before(until) {
		return nil, service.ErrLockHeld
	}

	l.token++
	token := l.token
	l.held[name] = now.Add(ttl)
	l.owner[name] = token

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		// An expired lock may already belong to someone else.
		if l.owner[name] == token {
			delete(l.held, name)
			delete(l.owner, name)
		}

		return nil
	}, nil
}
