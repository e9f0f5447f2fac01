package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pessoas/internal/person/idgen"
	personmetrics "pessoas/internal/person/metrics"
	"pessoas/internal/person/models"
	id "pessoas/pkg/domain"
	dErrors "pessoas/pkg/domain-errors"
	"pessoas/pkg/platform/sentinel"
	"pessoas/pkg/platform/tracer"
)

type Store interface {
	Insert(ctx context.Context, p *models.Person) error
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	Count(ctx context.Context) (int, error)
}

// Service implements the registry operations on top of a Store.
type Service struct {
	store   Store
	ids     idgen.Generator
	logger  *slog.Logger
	metrics *personmetrics.Metrics
	tracer  tracer.Tracer
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = idgen.NewV7()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s
}

// Create validates cmd and stores a new person under a fresh id. Fields are
// checked in order name, nick, birth date, stack entries; the first failure
// is returned and nothing is stored.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (_ *models.Person, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanPersonCreate, tracer.Int(tracer.AttrStackSize, len(cmd.Stack)))
	defer func() { span.End(err) }()

	name, err := models.NewPersonName(cmd.Name)
	if err != nil {
		return nil, err
	}
	nick, err := models.NewNick(cmd.Nick)
	if err != nil {
		return nil, err
	}
	birthDate, err := models.ParseBirthDate(cmd.BirthDate)
	if err != nil {
		return nil, err
	}
	var stack []models.TechName
	if cmd.Stack != nil {
		stack = make([]models.TechName, 0, len(cmd.Stack))
		for _, raw := range cmd.Stack {
			tech, err := models.NewTechName(raw)
			if err != nil {
				return nil, err
			}
			stack = append(stack, tech)
		}
	}

	p := models.NewPerson(s.ids.NewID(), name, nick, birthDate, stack)
	if err := s.store.Insert(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "person id already in use")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store person")
	}
	span.SetAttributes(tracer.String(tracer.AttrPersonID, p.ID().String()))
	span.AddEvent(tracer.EventPersonStored)

	s.recordCreated(ctx, start)
	s.logger.DebugContext(ctx, "person created", "person_id", p.ID().String())
	return p, nil
}

// FindByID returns the person stored under personID.
func (s *Service) FindByID(ctx context.Context, personID id.PersonID) (_ *models.Person, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPersonFind, tracer.String(tracer.AttrPersonID, personID.String()))
	defer func() { span.End(err) }()

	p, err := s.store.FindByID(ctx, personID)
	if err != nil {
		return nil, wrapPersonErr(err, "failed to load person")
	}
	return p, nil
}

// Count returns the number of registered persons.
func (s *Service) Count(ctx context.Context) (_ int, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPersonCount)
	defer func() { span.End(err) }()

	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count persons")
	}
	span.SetAttributes(tracer.Int(tracer.AttrRegistrySize, n))
	return n, nil
}

// Search is a placeholder: it performs no filtering and always returns an
// empty, non-nil result.
func (s *Service) Search(ctx context.Context, term string) ([]*models.Person, error) {
	_, span := s.tracer.Start(ctx, tracer.SpanPersonSearch, tracer.Int(tracer.AttrSearchTermLen, len(term)))
	defer span.End(nil)

	result := []*models.Person{}
	span.SetAttributes(tracer.Int(tracer.AttrResultCount, len(result)))
	return result, nil
}

func (s *Service) recordCreated(ctx context.Context, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCreated()
	s.metrics.ObserveCreate(start)
	n, err := s.store.Count(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read registry size", "error", err)
		return
	}
	s.metrics.SetRegistrySize(n)
}

func wrapPersonErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "person not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
