package postgres

import (
	"context"
	"errors"
	"fmt"

	"eduintel/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UniversityRepository struct {
	DB *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{
		DB: db,
	}
}

// FindAll returns the catalog in insertion order, which is also the
// tie-break order of the ranking.
func (r *UniversityRepository) FindAll(ctx context.Context) ([]domain.University, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var universities []domain.University
	if err := r.DB.WithContext(ctx).Order("id").Find(&universities).Error; err != nil {
		return nil, fmt.Errorf("failed to find universities: %w", err)
	}

	return universities, nil
}

func (r *UniversityRepository) FindByName(ctx context.Context, name string) (domain.University, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.University{}, false, fmt.Errorf("context error: %w", err)
	}

	var university domain.University
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&university).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.University{}, false, nil
		}
		return domain.University{}, false, fmt.Errorf("failed to find university: %w", err)
	}

	return university, true, nil
}

func (r *UniversityRepository) FindByCountry(ctx context.Context, country string) ([]domain.University, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var universities []domain.University
	err := r.DB.WithContext(ctx).Where("country = ?", country).Order("id").Find(&universities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find universities by country: %w", err)
	}

	return universities, nil
}

func (r *UniversityRepository) SearchByProgram(ctx context.Context, field string) ([]domain.University, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var universities []domain.University
	err := r.DB.WithContext(ctx).Where("program ILIKE ?", "%"+field+"%").Order("id").Find(&universities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search universities by program: %w", err)
	}

	return universities, nil
}

func (r *UniversityRepository) Create(ctx context.Context, university *domain.University) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(university).Error; err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}

	return nil
}

// UpsertByName inserts the university or overwrites the stored row with the
// same name.
func (r *UniversityRepository) UpsertByName(ctx context.Context, university *domain.University) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"country", "program", "avg_salary", "tuition", "visa_rate",
			"acceptance_rate", "employment_rate", "risk_index",
			"ielts_requirement", "cgpa_requirement", "ranking",
			"scholarship_available", "updated_at",
		}),
	}).Create(university).Error
	if err != nil {
		return fmt.Errorf("failed to upsert university: %w", err)
	}

	return nil
}
