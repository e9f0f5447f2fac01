package service

import (
	"log/slog"

	"pessoas/internal/person/idgen"
	personmetrics "pessoas/internal/person/metrics"
	"pessoas/pkg/platform/tracer"
)

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *personmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithIDGenerator replaces the version 7 generator, mainly for tests.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Service) {
		s.ids = gen
	}
}
