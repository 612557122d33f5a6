package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eduintel/domain"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		DB: db,
	}
}

func (r *AnalyticsRepository) Stats(ctx context.Context) (domain.AnalyticsStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalyticsStats{}, fmt.Errorf("context error: %w", err)
	}

	db := r.DB.WithContext(ctx)
	var stats domain.AnalyticsStats

	if err := db.Model(&domain.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return domain.AnalyticsStats{}, fmt.Errorf("failed to count students: %w", err)
	}

	var averages struct {
		AvgROI  sql.NullFloat64
		AvgVisa sql.NullFloat64
	}
	err := db.Model(&domain.Recommendation{}).
		Select("AVG(roi_score) AS avg_roi, AVG(visa_success) AS avg_visa").
		Scan(&averages).Error
	if err != nil {
		return domain.AnalyticsStats{}, fmt.Errorf("failed to average recommendations: %w", err)
	}
	if averages.AvgROI.Valid {
		stats.AvgROI = &averages.AvgROI.Float64
	}
	if averages.AvgVisa.Valid {
		stats.AvgVisa = &averages.AvgVisa.Float64
	}

	err = db.Model(&domain.Recommendation{}).
		Where("risk_level = ?", domain.RiskHigh).
		Count(&stats.HighRiskCount).Error
	if err != nil {
		return domain.AnalyticsStats{}, fmt.Errorf("failed to count high risk recommendations: %w", err)
	}

	return stats, nil
}
