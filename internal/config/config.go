package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/evalease/sentiment-service/internal/scorer"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; nothing is required.
type Config struct {
	// Server
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	LogLevel string

	// Scoring
	Scorer          scorer.Kind
	UpstreamURL     string
	UpstreamTimeout time.Duration

	// Per-client rate limiting on the sentiment route. Zero disables it.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string

	// Proxies allowed to set X-Forwarded-For / X-Real-IP. Empty means
	// forwarding headers are ignored.
	TrustedProxies []netip.Prefix
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	kind, err := scorer.ParseKind(getEnv("SENTIMENT_SCORER", string(scorer.KindVader)))
	if err != nil {
		return nil, fmt.Errorf("SENTIMENT_SCORER: %w", err)
	}

	proxies, err := parsePrefixes(getList("TRUSTED_PROXIES", nil))
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	cfg := &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "5000"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxBodyBytes:    int64(getInt("MAX_BODY_BYTES", 1<<20)),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		Scorer:          kind,
		UpstreamURL:     getEnv("SENTIMENT_UPSTREAM_URL", ""),
		UpstreamTimeout: getDuration("SENTIMENT_UPSTREAM_TIMEOUT", 3*time.Second),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     proxies,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

// parsePrefixes accepts CIDRs ("10.0.0.0/8") and bare addresses ("10.1.2.3").
func parsePrefixes(values []string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, v := range values {
		if p, err := netip.ParsePrefix(v); err == nil {
			out = append(out, p.Masked())
			continue
		}
		ip, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid address or CIDR %q", v)
		}
		ip = ip.Unmap()
		out = append(out, netip.PrefixFrom(ip, ip.BitLen()))
	}
	return out, nil
}
