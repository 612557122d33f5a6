package postgres

import (
	"context"
	"fmt"

	"eduintel/domain"

	"gorm.io/gorm"
)

type IngestRunRepository struct {
	DB *gorm.DB
}

func NewIngestRunRepository(db *gorm.DB) *IngestRunRepository {
	return &IngestRunRepository{
		DB: db,
	}
}

func (r *IngestRunRepository) Create(ctx context.Context, run *domain.CatalogIngestRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record ingest run: %w", err)
	}

	return nil
}

func (r *IngestRunRepository) Latest(ctx context.Context, limit int) ([]domain.CatalogIngestRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var runs []domain.CatalogIngestRun
	if err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to find ingest runs: %w", err)
	}

	return runs, nil
}
