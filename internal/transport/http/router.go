// Package httptransport assembles the public HTTP surface: middleware stack, person
// routes, health probes and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	personhandler "pessoas/internal/person/handler"
	"pessoas/internal/platform/health"
	"pessoas/pkg/platform/middleware/metadata"
	request "pessoas/pkg/platform/middleware/request"
	"pessoas/pkg/platform/validation"
)

// RouterDeps collects what NewRouter mounts. Gatherer and Metrics are
// optional; without a Gatherer no /metrics route is exposed.
type RouterDeps struct {
	Persons        *personhandler.Handler
	Health         *health.Handler
	Metadata       *metadata.Middleware
	Metrics        *request.Metrics
	Gatherer       prometheus.Gatherer
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(deps.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	if deps.Metadata != nil {
		r.Use(deps.Metadata.Handler)
	}
	r.Use(request.Logger(deps.Logger))
	r.Use(request.LatencyMiddleware(deps.Metrics, routePattern))
	r.Use(request.Timeout(deps.RequestTimeout))
	r.Use(request.BodyLimit(validation.MaxBodySize))
	r.Use(request.ContentTypeJSON)

	deps.Persons.Register(r)
	deps.Health.Register(r)
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// routePattern labels latency by matched route so ids do not explode cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
