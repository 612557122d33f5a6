package domain

type Analytics struct {
	TotalStudents      int64   `json:"total_students"`
	AvgROI             float64 `json:"avg_roi"`
	VisaSuccess        float64 `json:"visa_success"`
	HighRiskCases      int64   `json:"high_risk_cases"`
	ScholarshipSuccess float64 `json:"scholarship_success"`
}

// AnalyticsStats are the raw aggregates read from storage. Nil averages mean
// there were no recommendation rows to average.
type AnalyticsStats struct {
	TotalStudents int64
	AvgROI        *float64
	AvgVisa       *float64
	HighRiskCount int64
}
