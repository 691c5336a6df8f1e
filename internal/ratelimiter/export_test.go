package ratelimiter

import "time"

// SetClock replaces the time source for tests.
func (cl *ClientLimiters) SetClock(now func() time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.now = now
}

// SetMaxClients overrides the bucket table bound for tests.
func (cl *ClientLimiters) SetMaxClients(n int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.max = n
}
