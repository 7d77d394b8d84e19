package clock

import (
	"sync"
	"time"
)

// Clock is the single source of "now". Flight statuses are derived from naive
// local wall-clock time, so RealClock never converts zones.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// NewMockClockAt builds a MockClock from a local wall-clock date and time.
func NewMockClockAt(year int, month time.Month, day, hour, minute int) *MockClock {
	return NewMockClock(time.Date(year, month, day, hour, minute, 0, 0, time.Local))
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
