package clock

import "time"

// Clock abstracts "now" so refill-window arithmetic can run against a
// controlled instant in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until moved explicitly.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward, e.g. past a refill window.
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
