package config

import (
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr            = ":3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	TracingEnabled  bool
	// TrustedProxies lists networks whose X-Forwarded-For and X-Real-IP
	// headers are believed when resolving the client address.
	TrustedProxies []netip.Prefix
}

// Load reads optional .env files, then the environment. Variables already
// set in the environment win over file values; .env.local is read after .env.
func Load() Server {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getenv("PESSOAS_ADDR", DefaultAddr),
		Environment:     getenv("ENVIRONMENT", "development"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		RequestTimeout:  durationEnv("REQUEST_TIMEOUT", DefaultRequestTimeout),
		ShutdownTimeout: durationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		TracingEnabled:  os.Getenv("TRACING_ENABLED") == "true",
		TrustedProxies:  prefixesEnv("TRUSTED_PROXIES"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationEnv falls back on missing, malformed, or non-positive values.
func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// prefixesEnv parses a comma separated list of CIDRs or bare addresses.
// Entries that do not parse are skipped.
func prefixesEnv(key string) []netip.Prefix {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if p, err := netip.ParsePrefix(part); err == nil {
			out = append(out, p.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(part); err == nil {
			out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return out
}
