package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	personhandler "pessoas/internal/person/handler"
	personmetrics "pessoas/internal/person/metrics"
	"pessoas/internal/person/service"
	"pessoas/internal/person/store"
	"pessoas/internal/platform/config"
	"pessoas/internal/platform/health"
	"pessoas/internal/platform/logger"
	httptransport "pessoas/internal/transport/http"
	"pessoas/pkg/platform/middleware/metadata"
	request "pessoas/pkg/platform/middleware/request"
	"pessoas/pkg/platform/tracer"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Registry logic lives in internal/person.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	log.Info("initializing pessoas",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"tracing_enabled", cfg.TracingEnabled,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	t, shutdownTracing := buildTracer(cfg)
	defer shutdownTracing()

	persons := store.NewInMemory()
	svc := service.New(persons,
		service.WithLogger(log),
		service.WithMetrics(personmetrics.New(registry)),
		service.WithTracer(t),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("registry", func(ctx context.Context) error {
		_, err := svc.Count(ctx)
		return err
	})

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Persons:        personhandler.New(svc, log),
		Health:         healthHandler,
		Metadata:       metadata.NewMiddleware(&metadata.Config{TrustedProxies: cfg.TrustedProxies}),
		Metrics:        request.NewMetrics(registry),
		Gatherer:       registry,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logRegistrySummary(log, persons)
	return err
}

// buildTracer returns an OpenTelemetry tracer when tracing is enabled and a
// no-op one otherwise. Spans are sampled and kept in process; exporting them
// is left to an exporter registered on the provider.
func buildTracer(cfg config.Server) (tracer.Tracer, func()) {
	if !cfg.TracingEnabled {
		return tracer.NewNoop(), func() {}
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	return tracer.NewOTel(tracer.WithProvider(tp)), func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}
}

// logRegistrySummary records what the process held before its memory is released.
func logRegistrySummary(log *slog.Logger, persons *store.InMemory) {
	snapshot, err := persons.Snapshot(context.Background())
	if err != nil {
		log.Warn("registry summary unavailable", "error", err)
		return
	}
	attrs := []any{"persons", len(snapshot)}
	if len(snapshot) > 0 {
		attrs = append(attrs,
			"first_created_at", snapshot[0].ID().CreatedAt().UTC().Format(time.RFC3339),
			"last_created_at", snapshot[len(snapshot)-1].ID().CreatedAt().UTC().Format(time.RFC3339),
		)
	}
	log.Info("registry discarded on shutdown", attrs...)
}
