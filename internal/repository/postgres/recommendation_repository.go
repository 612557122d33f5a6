package postgres

import (
	"context"
	"fmt"

	"eduintel/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

// SaveRecommendations writes the whole shortlist in one statement.
func (r *RecommendationRepository) SaveRecommendations(ctx context.Context, records []domain.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}

	return nil
}

func (r *RecommendationRepository) FindByStudent(ctx context.Context, studentID uint) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.Recommendation
	err := r.DB.WithContext(ctx).Where("student_id = ?", studentID).Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}

	return records, nil
}
