package repository

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// MonotonicClock hands out strictly increasing UTC instants at microsecond precision, the
// resolution postgres keeps for timestamptz. Two inserts never share a send time.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
