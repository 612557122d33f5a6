package recommendation

import (
	"context"
	"errors"
	"fmt"

	"eduintel/business/engine"
	"eduintel/domain"
	"eduintel/pkg/logger"
)

// StudentRepository contract interface
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
}

// CatalogProvider hands out the catalog snapshot used for one request.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (engine.Catalog, error)
}

// PersistenceGateway stores generated recommendations.
type PersistenceGateway interface {
	SaveRecommendations(ctx context.Context, records []domain.Recommendation) error
}

type Service struct {
	students StudentRepository
	catalog  CatalogProvider
	gateway  PersistenceGateway
}

func NewService(students StudentRepository, catalog CatalogProvider, gateway PersistenceGateway) *Service {
	return &Service{
		students: students,
		catalog:  catalog,
		gateway:  gateway,
	}
}

// Recommend stores the student profile, scores the current catalog and
// returns the shortlist. A gateway failure is logged and counted only; the
// computed shortlist is still returned.
func (s *Service) Recommend(ctx context.Context, student *domain.Student) ([]domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	traceID := TraceIDFromContext(ctx)

	if err := s.students.Create(ctx, student); err != nil {
		RecommendationRunsTotal.WithLabelValues("error").Inc()
		logger.Error("failed to store student profile", "trace_id", traceID, "error", err)
		return nil, err
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		RecommendationRunsTotal.WithLabelValues("error").Inc()
		logger.Error("failed to load catalog", "trace_id", traceID, "error", err)
		return nil, err
	}

	shortlist := engine.Generate(*student, catalog)
	if len(shortlist.Records) == 0 {
		RecommendationRunsTotal.WithLabelValues("empty").Inc()
		logger.Warn("catalog is empty, nothing to recommend", "trace_id", traceID, "student_id", student.ID)
		return shortlist.Results, nil
	}

	if s.gateway != nil {
		if err := s.gateway.SaveRecommendations(ctx, shortlist.Records); err != nil {
			PersistenceFailuresTotal.Inc()
			logger.Error("failed to persist recommendations",
				"trace_id", traceID,
				"student_id", student.ID,
				"count", len(shortlist.Records),
				"error", err,
			)
		}
	}

	RecommendationRunsTotal.WithLabelValues("ok").Inc()
	logger.Info("recommendations generated",
		"trace_id", traceID,
		"student_id", student.ID,
		"catalog_size", len(catalog),
		"top", shortlist.Results[0].University,
	)

	return shortlist.Results, nil
}

// Explain returns the whole ranked catalog for a profile without storing
// anything.
func (s *Service) Explain(ctx context.Context, student domain.Student) ([]domain.ExplainedCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Explain(student, catalog), nil
}

// FanOut saves to every gateway in order and joins their errors.
type FanOut []PersistenceGateway

func (f FanOut) SaveRecommendations(ctx context.Context, records []domain.Recommendation) error {
	var errs []error
	for _, g := range f {
		if g == nil {
			continue
		}
		if err := g.SaveRecommendations(ctx, records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
