package runner

import (
	"sync"
	"time"
)

// Clock abstracts the time source so budget and pacing logic is testable
type Clock interface {
	Now() time.Time
}

// monotonicClock is the production clock; time.Now carries a monotonic
// reading so budgets survive wall-clock adjustments
type monotonicClock struct{}

// NewMonotonicClock returns the real time source
func NewMonotonicClock() Clock {
	return monotonicClock{}
}

func (monotonicClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable time source for tests
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock starting at the given time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime sets the current time
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
