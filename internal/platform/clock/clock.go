package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. Every "now" in the ledger comes from one.
type Clock interface {
	Now() time.Time
}

// System is the wall clock, in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Zoned reports another clock's time in a fixed location. Fiscal years follow
// the calendar year of that location.
type Zoned struct {
	Clock    Clock
	Location *time.Location
}

// InLocation wraps c so Now is expressed in loc. A nil loc means UTC.
func InLocation(c Clock, loc *time.Location) Zoned {
	if loc == nil {
		loc = time.UTC
	}
	return Zoned{Clock: c, Location: loc}
}

func (z Zoned) Now() time.Time {
	return z.Clock.Now().In(z.Location)
}

// Manual is a settable clock for tests and replays.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a clock frozen at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}
