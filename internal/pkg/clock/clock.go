package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct {
	loc *time.Location
}

// New returns a TimeClocker that reads the current system time in UTC.
func New() *TimeClocker {
	return &TimeClocker{loc: time.UTC}
}

// NewIn returns a TimeClocker that reports times in loc.
func NewIn(loc *time.Location) *TimeClocker {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeClocker{loc: loc}
}

// Now returns the current system time truncated to microseconds, the
// precision Postgres keeps for timestamptz, so stored and returned audit
// values compare equal.
func (c *TimeClocker) Now() time.Time {
	return time.Now().In(c.loc).Truncate(time.Microsecond)
}
