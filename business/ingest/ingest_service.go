package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eduintel/business/catalog"
	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const seedSource = "seed"

const (
	defaultRunHistory = 20
	maxRunHistory     = 100
)

type CatalogWriter interface {
	Upsert(ctx context.Context, universities []domain.University) (int, error)
}

type RunRepository interface {
	Create(ctx context.Context, run *domain.CatalogIngestRun) error
	Latest(ctx context.Context, limit int) ([]domain.CatalogIngestRun, error)
}

// RawArchive keeps a copy of every fetched feed before validation.
type RawArchive interface {
	ArchiveScrape(ctx context.Context, source string, universities []domain.University) error
}

type Service struct {
	source   Source
	catalog  CatalogWriter
	runs     RunRepository
	archive  RawArchive
	validate *validator.Validate
	now      func() time.Time
}

// NewService wires the pipeline. source, runs and archive may be nil; without
// a source every run loads the built-in catalog.
func NewService(source Source, catalog CatalogWriter, runs RunRepository, archive RawArchive) *Service {
	return &Service{
		source:   source,
		catalog:  catalog,
		runs:     runs,
		archive:  archive,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Run fetches the feed, falls back to the seed catalog when the feed is
// unavailable or empty, validates each record and upserts the valid ones.
func (s *Service) Run(ctx context.Context) (domain.CatalogIngestRun, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogIngestRun{}, fmt.Errorf("context error: %w", err)
	}

	run := domain.CatalogIngestRun{StartedAt: s.now()}
	records, source := s.collect(ctx)
	run.Source = source
	run.UsedSeed = source == seedSource
	run.Fetched = len(records)

	if s.archive != nil && !run.UsedSeed {
		raw := make([]domain.University, 0, len(records))
		for _, r := range records {
			raw = append(raw, r.University())
		}
		if err := s.archive.ArchiveScrape(ctx, source, raw); err != nil {
			logger.Warn("failed to archive feed snapshot", "source", source, "error", err)
		}
	}

	valid, rejections := s.screen(records)
	run.Rejected = len(rejections)
	if len(rejections) > 0 {
		run.Rejections = rejections
	}

	upserted, err := s.catalog.Upsert(ctx, valid)
	run.Upserted = upserted
	run.FinishedAt = s.now()

	IngestRecordsTotal.WithLabelValues("upserted").Add(float64(upserted))
	IngestRecordsTotal.WithLabelValues("rejected").Add(float64(run.Rejected))

	if err != nil {
		logger.Error("catalog ingest failed", "source", source, "upserted", upserted, "error", err)
		s.record(ctx, &run)
		return run, err
	}

	s.record(ctx, &run)
	logger.Info("catalog ingest finished",
		"source", source,
		"fetched", run.Fetched,
		"upserted", run.Upserted,
		"rejected", run.Rejected,
		"used_seed", run.UsedSeed,
	)
	return run, nil
}

func (s *Service) collect(ctx context.Context) ([]Record, string) {
	if s.source != nil {
		records, err := s.source.Fetch(ctx)
		if err == nil && len(records) > 0 {
			return records, s.source.Name()
		}
		logger.Warn("catalog feed unavailable, loading seed catalog", "source", s.source.Name(), "error", err)
	}

	seed := catalog.SeedUniversities()
	records := make([]Record, 0, len(seed))
	for _, u := range seed {
		records = append(records, fromUniversity(u))
	}
	return records, seedSource
}

// screen validates records and drops repeated names, keeping the first.
func (s *Service) screen(records []Record) ([]domain.University, datatypes.JSONMap) {
	valid := make([]domain.University, 0, len(records))
	rejections := datatypes.JSONMap{}
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		r.Name = strings.TrimSpace(r.Name)
		key := r.Name
		if key == "" {
			key = fmt.Sprintf("record %d", i+1)
		}

		if err := s.validate.Struct(r); err != nil {
			rejections[key] = fmt.Sprintf("%s: %s", domain.ErrInvalidUniversity, err)
			continue
		}
		if _, dup := seen[r.Name]; dup {
			rejections[fmt.Sprintf("%s (record %d)", key, i+1)] = "duplicate name"
			continue
		}
		seen[r.Name] = struct{}{}
		valid = append(valid, r.University())
	}

	return valid, rejections
}

func (s *Service) record(ctx context.Context, run *domain.CatalogIngestRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Create(ctx, run); err != nil {
		logger.Warn("failed to record ingest run", "error", err)
	}
}

// RecentRuns lists the latest ingest runs, newest first. A limit outside
// 1..100 falls back to 20.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]domain.CatalogIngestRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.runs == nil {
		return []domain.CatalogIngestRun{}, nil
	}
	if limit <= 0 || limit > maxRunHistory {
		limit = defaultRunHistory
	}

	runs, err := s.runs.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []domain.CatalogIngestRun{}
	}
	return runs, nil
}
