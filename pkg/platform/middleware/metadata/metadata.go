package metadata

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/mssola/useragent"

	"pessoas/pkg/requestcontext"
)

// MaxXFFHeaderLength bounds the X-Forwarded-For value we are willing to parse.
const MaxXFFHeaderLength = 500

// Config holds configuration for the metadata middleware.
type Config struct {
	// TrustedProxies are the prefixes allowed to set X-Forwarded-For / X-Real-IP.
	// Empty means forwarding headers are never trusted.
	TrustedProxies []netip.Prefix
}

// Middleware resolves client metadata once per request.
type Middleware struct {
	config *Config
}

func NewMiddleware(cfg *Config) *Middleware {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Middleware{config: cfg}
}

// Handler stores client IP, User-Agent and a device label in the request context.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), userAgent, DeviceLabel(userAgent))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) clientIP(r *http.Request) string {
	remoteIP := parseRemoteAddr(r.RemoteAddr)
	if remoteIP == "" {
		return "unknown"
	}
	if !m.isTrustedProxy(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		forwarded = r.Header.Get("X-Real-IP")
	}
	if forwarded == "" || len(forwarded) > MaxXFFHeaderLength {
		return remoteIP
	}

	first, _, _ := strings.Cut(forwarded, ",")
	first = strings.TrimSpace(first)
	if _, err := netip.ParseAddr(first); err != nil {
		return remoteIP
	}
	return first
}

func (m *Middleware) isTrustedProxy(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, prefix := range m.config.TrustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parseRemoteAddr(remoteAddr string) string {
	if remoteAddr == "" {
		return ""
	}
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().String()
	}
	return remoteAddr
}

// DeviceLabel reduces a User-Agent to "Browser on OS" for request logs.
func DeviceLabel(userAgent string) string {
	if userAgent == "" {
		return "unknown"
	}
	ua := useragent.New(userAgent)
	if ua.Bot() {
		return "bot"
	}

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "unknown"
	}
	os := ua.OS()
	if os == "" {
		return browser
	}
	return browser + " on " + os
}
