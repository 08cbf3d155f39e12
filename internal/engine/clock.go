package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Calculator reads "today" from it; the validator itself never does.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
// It backs the CLI's reproducible runs and the tests.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
