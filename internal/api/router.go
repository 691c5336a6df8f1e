package api

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/evalease/sentiment-service/internal/api/handler"
	apimw "github.com/evalease/sentiment-service/internal/api/middleware"
	"github.com/evalease/sentiment-service/internal/metrics"
	"github.com/evalease/sentiment-service/internal/service"
)

// Options carries the optional pieces of the HTTP surface.
type Options struct {
	// MaxBodyBytes caps request bodies. Zero means 1 MB.
	MaxBodyBytes int64
	// AllowedOrigins for CORS. Empty means any origin.
	AllowedOrigins []string
	// Limiter, when set, applies per-client rate limiting to the sentiment route.
	Limiter apimw.Limiter
	// TrustedProxies whose forwarding headers identify the client. Empty
	// means the socket peer address is always the client.
	TrustedProxies []netip.Prefix
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.SentimentService,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	logger *zap.Logger,
	opts Options,
) http.Handler {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(apimw.RealIP(opts.TrustedProxies))
	r.Use(chimw.RequestSize(maxBody))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", apimw.CorrelationIDHeader},
		ExposedHeaders: []string{apimw.CorrelationIDHeader},
		MaxAge:         300,
	}))
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(m.Middleware)

	// --- handler instances ---
	sh := handler.NewSentimentHandler(svc, logger)
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(apimw.RateLimit(opts.Limiter, m.RateLimited.Inc))
		}
		r.Post("/api/sentiment", sh.Analyze)
	})

	return r
}
