package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultIdleTTL is how long a client's bucket survives without traffic.
	DefaultIdleTTL = 5 * time.Minute
	// DefaultMaxClients bounds the bucket table. When full, the least
	// recently seen client is evicted to make room.
	DefaultMaxClients = 10000
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiters holds one token bucket limiter per client key (usually the
// remote IP). Buckets idle for longer than the TTL are evicted lazily on
// access so the table does not grow without bound.
type ClientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	max     int
	now     func() time.Time

	lastSweep time.Time
}

// New creates a ClientLimiters allowing ratePerSec tokens per second per
// client with the given burst.
func New(ratePerSec float64, burst int) *ClientLimiters {
	return &ClientLimiters{
		buckets: make(map[string]*clientBucket),
		limit:   rate.Limit(ratePerSec),
		burst:   burst,
		ttl:     DefaultIdleTTL,
		max:     DefaultMaxClients,
		now:     time.Now,
	}
}

// Allow reports whether the client may proceed now, consuming a token if so.
func (cl *ClientLimiters) Allow(key string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	cl.sweep(now)

	b, ok := cl.buckets[key]
	if !ok {
		if len(cl.buckets) >= cl.max {
			cl.evictOldest()
		}
		b = &clientBucket{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (cl *ClientLimiters) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.buckets)
}

func (cl *ClientLimiters) sweep(now time.Time) {
	if now.Sub(cl.lastSweep) < cl.ttl {
		return
	}
	cl.lastSweep = now
	for key, b := range cl.buckets {
		if now.Sub(b.lastSeen) > cl.ttl {
			delete(cl.buckets, key)
		}
	}
}

func (cl *ClientLimiters) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, b := range cl.buckets {
		if !found || b.lastSeen.Before(oldest) {
			oldestKey, oldest, found = key, b.lastSeen, true
		}
	}
	if found {
		delete(cl.buckets, oldestKey)
	}
}
