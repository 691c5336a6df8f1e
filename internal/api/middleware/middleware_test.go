package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apimw "github.com/evalease/sentiment-service/internal/api/middleware"
)

func echoCorrelation(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(apimw.GetCorrelationID(r.Context())))
}

func TestCorrelationID_Generated(t *testing.T) {
	rec := httptest.NewRecorder()
	apimw.CorrelationID(http.HandlerFunc(echoCorrelation)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(apimw.CorrelationIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())
}

func TestCorrelationID_Propagated(t *testing.T) {
	tests := []struct {
		name, header, value, want string
	}{
		{"correlation header", "X-Correlation-ID", "abc-123", "abc-123"},
		{"request id header", "X-Request-ID", "req-9", "req-9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tc.header, tc.value)
			rec := httptest.NewRecorder()
			apimw.CorrelationID(http.HandlerFunc(echoCorrelation)).ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Header().Get(apimw.CorrelationIDHeader))
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestCorrelationID_RejectsUnsafeValues(t *testing.T) {
	for _, bad := range []string{"has space", strings.Repeat("x", 200)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", bad)
		rec := httptest.NewRecorder()
		apimw.CorrelationID(http.HandlerFunc(echoCorrelation)).ServeHTTP(rec, req)

		assert.NotEqual(t, bad, rec.Header().Get(apimw.CorrelationIDHeader))
		assert.Len(t, rec.Header().Get(apimw.CorrelationIDHeader), 36)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := apimw.CorrelationID(apimw.RequestLogger(zap.New(core))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}),
	))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/sentiment", nil))

	entries := logs.FilterMessage("http request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/api/sentiment", fields["path"])
		assert.EqualValues(t, http.StatusBadRequest, fields["status"])
		assert.NotEmpty(t, fields["correlation_id"])
	}
}

func TestRequestLogger_ServerErrorIsWarn(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := apimw.RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

type denyAfter struct {
	n    int
	keys []string
}

func (d *denyAfter) Allow(key string) bool {
	d.keys = append(d.keys, key)
	return len(d.keys) <= d.n
}

func TestRateLimit(t *testing.T) {
	l := &denyAfter{n: 1}
	var limited int
	h := apimw.RateLimit(l, func() { limited++ })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/sentiment", nil)
	req.RemoteAddr = "192.0.2.7:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, limited)
	assert.Equal(t, []string{"192.0.2.7", "192.0.2.7"}, l.keys)
}
