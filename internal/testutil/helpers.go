package testutil

import (
	"sync"
	"time"
)

const DatabaseError = "database error occurred"

// Default type for a context with timeout, used on mock matchers.
const DefaultTimerCtx = "*context.timerCtx"

// FakeClock is a manually advanced clock for expiration tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
