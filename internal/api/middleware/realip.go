package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// RealIP rewrites r.RemoteAddr to the originating client address, but only
// when the socket peer is one of the trusted proxies. Requests from any
// other peer keep their socket address, so forwarded headers cannot be used
// to pick an arbitrary client identity. With no trusted proxies the
// middleware is a no-op.
//
// X-Forwarded-For is walked right to left and the first hop that is not a
// trusted proxy wins; X-Real-IP is used when X-Forwarded-For is absent.
func RealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if peer, ok := peerAddr(r.RemoteAddr); ok && isTrusted(trusted, peer) {
				if ip, ok := forwardedClient(r, trusted); ok {
					r.RemoteAddr = ip.String()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forwardedClient(r *http.Request, trusted []netip.Prefix) (netip.Addr, bool) {
	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				return netip.Addr{}, false
			}
			ip = ip.Unmap()
			if !isTrusted(trusted, ip) {
				return ip, true
			}
		}
		return netip.Addr{}, false
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		if ip, err := netip.ParseAddr(strings.TrimSpace(xrip)); err == nil {
			return ip.Unmap(), true
		}
	}
	return netip.Addr{}, false
}

func peerAddr(remoteAddr string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

func isTrusted(trusted []netip.Prefix, ip netip.Addr) bool {
	for _, p := range trusted {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}
