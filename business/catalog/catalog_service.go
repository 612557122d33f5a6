package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"eduintel/business/engine"
	"eduintel/domain"
	"eduintel/pkg/logger"
)

// UniversityRepository contract interface
type UniversityRepository interface {
	FindAll(ctx context.Context) ([]domain.University, error)
	FindByName(ctx context.Context, name string) (domain.University, bool, error)
	FindByCountry(ctx context.Context, country string) ([]domain.University, error)
	SearchByProgram(ctx context.Context, field string) ([]domain.University, error)
	Create(ctx context.Context, university *domain.University) error
	UpsertByName(ctx context.Context, university *domain.University) error
}

// Cache holds the last loaded catalog snapshot.
type Cache interface {
	GetCatalog(ctx context.Context) ([]domain.University, bool, error)
	SetCatalog(ctx context.Context, universities []domain.University) error
	InvalidateCatalog(ctx context.Context) error
}

type Service struct {
	repo  UniversityRepository
	cache Cache

	// generation advances on every invalidation so a snapshot read before a
	// write is never cached after it.
	generation atomic.Uint64
}

// NewService builds the catalog service; cache may be nil.
func NewService(repo UniversityRepository, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Snapshot returns the full catalog for one scoring pass. A cold or empty
// store is seeded with the built-in data first.
func (s *Service) Snapshot(ctx context.Context) (engine.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		cached, ok, err := s.cache.GetCatalog(ctx)
		if err != nil {
			logger.Warn("catalog cache read failed", "error", err)
		} else if ok && len(cached) > 0 {
			return engine.Catalog(cached), nil
		}
	}

	gen := s.generation.Load()
	universities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(universities) == 0 {
		if _, err := s.Initialize(ctx); err != nil {
			return nil, err
		}
		gen = s.generation.Load()
		universities, err = s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	s.store(ctx, gen, universities)
	return engine.Catalog(universities), nil
}

// store caches a catalog read at generation gen. The write is skipped when
// an invalidation happened since, and undone when one lands during it.
func (s *Service) store(ctx context.Context, gen uint64, universities []domain.University) {
	if s.cache == nil || len(universities) == 0 {
		return
	}
	if s.generation.Load() != gen {
		return
	}

	if err := s.cache.SetCatalog(ctx, universities); err != nil {
		logger.Warn("catalog cache write failed", "error", err)
		return
	}

	if s.generation.Load() != gen {
		if err := s.cache.InvalidateCatalog(ctx); err != nil {
			logger.Warn("catalog cache invalidate failed", "error", err)
		}
	}
}

// Initialize inserts every seed university that is not stored yet and
// returns how many were added.
func (s *Service) Initialize(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	added := 0
	for _, u := range SeedUniversities() {
		_, exists, err := s.repo.FindByName(ctx, u.Name)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		u := u
		if err := s.repo.Create(ctx, &u); err != nil {
			return added, fmt.Errorf("failed to seed %s: %w", u.Name, err)
		}
		added++
	}

	if added > 0 {
		logger.Info("catalog seeded", "added", added)
		s.invalidate(ctx)
	}

	return added, nil
}

// Upsert stores universities by unique name and drops the cached snapshot.
func (s *Service) Upsert(ctx context.Context, universities []domain.University) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	stored := 0
	for i := range universities {
		if err := s.repo.UpsertByName(ctx, &universities[i]); err != nil {
			return stored, err
		}
		stored++
	}

	if stored > 0 {
		s.invalidate(ctx)
	}
	return stored, nil
}

// ListUniversities filters by exact country and/or a case-insensitive
// program substring. Empty filters return the whole catalog.
func (s *Service) ListUniversities(ctx context.Context, country, field string) ([]domain.University, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	country = strings.TrimSpace(country)
	field = strings.TrimSpace(field)

	switch {
	case country != "" && field != "":
		byCountry, err := s.repo.FindByCountry(ctx, country)
		if err != nil {
			return nil, err
		}
		out := make([]domain.University, 0, len(byCountry))
		for _, u := range byCountry {
			if strings.Contains(strings.ToLower(u.Program), strings.ToLower(field)) {
				out = append(out, u)
			}
		}
		return out, nil
	case country != "":
		return s.repo.FindByCountry(ctx, country)
	case field != "":
		return s.repo.SearchByProgram(ctx, field)
	default:
		return s.repo.FindAll(ctx)
	}
}

func (s *Service) invalidate(ctx context.Context) {
	s.generation.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		logger.Warn("catalog cache invalidate failed", "error", err)
	}
}
