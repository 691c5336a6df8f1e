package middleware

import (
	"encoding/json"
	"net"
	"net/http"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects requests with 429 once the client's bucket is empty.
// The client key is the peer IP from r.RemoteAddr; mount RealIP first so
// trusted proxies are honoured. onLimited is optional.
func RateLimit(l Limiter, onLimited func()) func(http.Handler) http.Handler {
	if onLimited == nil {
		onLimited = func() {}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientKey(r)) {
				onLimited()
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
