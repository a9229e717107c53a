package core

import (
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts wall-clock access for the domain. Feature math
// never uses it (the reference date comes from the data itself); it only
// feeds run timestamps and duration measurements.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
