package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	apimw "github.com/evalease/sentiment-service/internal/api/middleware"
)

func remoteAddrAfter(trusted []netip.Prefix, remote string, headers map[string]string) string {
	var got string
	h := apimw.RealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRealIP(t *testing.T) {
	proxies := []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.1/32"),
	}

	tests := []struct {
		name    string
		trusted []netip.Prefix
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:    "no trusted proxies ignores headers",
			remote:  "203.0.113.5:4000",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"},
			want:    "203.0.113.5:4000",
		},
		{
			name:    "untrusted peer ignores headers",
			trusted: proxies,
			remote:  "203.0.113.5:4000",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:    "203.0.113.5:4000",
		},
		{
			name:    "trusted peer uses forwarded client",
			trusted: proxies,
			remote:  "10.0.0.7:443",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1"},
			want:    "198.51.100.1",
		},
		{
			name:    "rightmost untrusted hop wins",
			trusted: proxies,
			remote:  "10.0.0.7:443",
			headers: map[string]string{"X-Forwarded-For": "1.1.1.1, 198.51.100.1, 192.168.1.1"},
			want:    "198.51.100.1",
		},
		{
			name:    "x-real-ip from trusted peer",
			trusted: proxies,
			remote:  "10.0.0.7:443",
			headers: map[string]string{"X-Real-IP": "198.51.100.9"},
			want:    "198.51.100.9",
		},
		{
			name:    "garbage hop keeps peer address",
			trusted: proxies,
			remote:  "10.0.0.7:443",
			headers: map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:    "10.0.0.7:443",
		},
		{
			name:    "all hops trusted keeps peer address",
			trusted: proxies,
			remote:  "10.0.0.7:443",
			headers: map[string]string{"X-Forwarded-For": "10.0.0.8"},
			want:    "10.0.0.7:443",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, remoteAddrAfter(tc.trusted, tc.remote, tc.headers))
		})
	}
}
