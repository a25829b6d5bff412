// Package lifecycle holds shared timing constants for starting and stopping deliveries.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds graceful shutdown of servers and schedulers.
	DefaultTimeout = 10 * time.Second

	// JobTimeout bounds a single scheduled job run.
	JobTimeout = 5 * time.Minute
)
