package testutil

import "time"

// FixedClock reports a settable instant.
type FixedClock struct {
	Current time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.Current
}
