package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

const tracerName = "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/observability/service"

// Service decorates an inventory application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// AddDog persists a new dog aggregate with instrumentation.
func (s *Service) AddDog(ctx context.Context, input invtypes.AddDogInput) (*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.AddDog")
	defer span.End()

	s.logInfo(ctx, "adding dog")
	result, err := s.inner.AddDog(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add dog")
	}
	if result != nil && result.Dog != nil {
		s.metrics.recordCreated(ctx, result.Dog.Status)
		s.logInfo(ctx, "dog added", slog.Int64("dog.id", result.Dog.ID), slog.String("status", result.Dog.Status))
	}
	return result, nil
}

// UpdateDog applies a partial mutation to an existing dog.
func (s *Service) UpdateDog(ctx context.Context, input invtypes.UpdateDogInput) (*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateDog", attribute.Int64("dog.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating dog", slog.Int64("dog.id", input.ID))
	result, err := s.inner.UpdateDog(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update dog", slog.Int64("dog.id", input.ID))
	}
	if result != nil && result.Dog != nil {
		s.metrics.recordUpdated(ctx, result.Dog.Status)
		s.logInfo(ctx, "dog updated", slog.Int64("dog.id", result.Dog.ID), slog.String("status", result.Dog.Status))
	}
	return result, nil
}

// GetDogByID loads a single dog aggregate.
func (s *Service) GetDogByID(ctx context.Context, input invtypes.DogIdentifier) (*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.GetDogByID", attribute.Int64("dog.id", input.ID))
	defer span.End()

	result, err := s.inner.GetDogByID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load dog", slog.Int64("dog.id", input.ID))
	}
	return result, nil
}

// DeleteDog removes a dog.
func (s *Service) DeleteDog(ctx context.Context, input invtypes.DogIdentifier) error {
	ctx, span := s.startSpan(ctx, "Service.DeleteDog", attribute.Int64("dog.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "deleting dog", slog.Int64("dog.id", input.ID))
	if err := s.inner.DeleteDog(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete dog", slog.Int64("dog.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "dog deleted", slog.Int64("dog.id", input.ID))
	return nil
}

// ListDogs exposes the full adoptable inventory.
func (s *Service) ListDogs(ctx context.Context) ([]*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.ListDogs")
	defer span.End()

	result, err := s.inner.ListDogs(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list dogs")
	}
	span.SetAttributes(attribute.Int("dog.result.count", len(result)))
	return result, nil
}

// ListDogsByBreedAPIID returns the dogs linked to a remote breed id.
func (s *Service) ListDogsByBreedAPIID(ctx context.Context, input invtypes.BreedAPIIdentifier) ([]*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.ListDogsByBreedAPIID", attribute.Int("breed.api_id", input.APIID))
	defer span.End()

	result, err := s.inner.ListDogsByBreedAPIID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list dogs by breed", slog.Int("breed.api_id", input.APIID))
	}
	span.SetAttributes(attribute.Int("dog.result.count", len(result)))
	return result, nil
}

// ListBreeds returns the local breed records.
func (s *Service) ListBreeds(ctx context.Context) ([]*domain.Breed, error) {
	ctx, span := s.startSpan(ctx, "Service.ListBreeds")
	defer span.End()

	result, err := s.inner.ListBreeds(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list breeds")
	}
	span.SetAttributes(attribute.Int("breed.result.count", len(result)))
	return result, nil
}

// TagDog attaches temperament enrichment to an existing dog.
func (s *Service) TagDog(ctx context.Context, input invtypes.TagDogInput) (*invtypes.DogProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.TagDog",
		attribute.Int64("dog.id", input.ID),
		attribute.Int("dog.tags.count", len(input.Tags)),
	)
	defer span.End()

	s.logInfo(ctx, "tagging dog", slog.Int64("dog.id", input.ID))
	result, err := s.inner.TagDog(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to tag dog", slog.Int64("dog.id", input.ID))
	}
	s.metrics.recordTagged(ctx)
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	dogsCreated metric.Int64Counter
	dogsUpdated metric.Int64Counter
	dogsDeleted metric.Int64Counter
	dogsTagged  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	dogsCreated, _ := m.Int64Counter("inventory.service.dogs_created", metric.WithDescription("Number of dogs created"))
	dogsUpdated, _ := m.Int64Counter("inventory.service.dogs_updated", metric.WithDescription("Number of dogs updated"))
	dogsDeleted, _ := m.Int64Counter("inventory.service.dogs_deleted", metric.WithDescription("Number of dogs deleted"))
	dogsTagged, _ := m.Int64Counter("inventory.service.dogs_tagged", metric.WithDescription("Number of temperament enrichments"))
	return serviceMetrics{
		dogsCreated: dogsCreated,
		dogsUpdated: dogsUpdated,
		dogsDeleted: dogsDeleted,
		dogsTagged:  dogsTagged,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status string) {
	addCounter(ctx, m.dogsCreated, 1, attribute.String("dog.status", status))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status string) {
	addCounter(ctx, m.dogsUpdated, 1, attribute.String("dog.status", status))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.dogsDeleted, 1)
}

func (m serviceMetrics) recordTagged(ctx context.Context) {
	addCounter(ctx, m.dogsTagged, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
