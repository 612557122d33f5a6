package domain

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Recommendation is the persisted copy of one shortlisted university.
type Recommendation struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	StudentID             uint      `gorm:"column:student_id;not null;index" json:"student_id"`
	UniversityID          uint      `gorm:"column:university_id;not null;index" json:"university_id"`
	ROIScore              float64   `gorm:"column:roi_score;not null" json:"roi_score"`
	AcceptanceProbability float64   `gorm:"column:acceptance_probability;not null" json:"acceptance_probability"`
	Employability         float64   `gorm:"column:employability;not null" json:"employability"`
	VisaSuccess           float64   `gorm:"column:visa_success;not null" json:"visa_success"`
	AIConfidence          float64   `gorm:"column:ai_confidence;not null" json:"ai_confidence"`
	RiskLevel             RiskLevel `gorm:"column:risk_level;not null" json:"risk_level"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// RecommendationResult is the public response shape, one per rank.
type RecommendationResult struct {
	ID                    int       `json:"id"`
	University            string    `json:"university"`
	Country               string    `json:"country"`
	Program               string    `json:"program"`
	ROIScore              float64   `json:"roiScore"`
	AcceptanceProbability float64   `json:"acceptanceProbability"`
	Employability         float64   `json:"employability"`
	VisaSuccess           float64   `json:"visaSuccess"`
	AIConfidence          float64   `json:"aiConfidence"`
	RiskLevel             RiskLevel `json:"riskLevel"`
	TuitionFee            float64   `json:"tuitionFee"`
	ScholarshipAvailable  bool      `json:"scholarshipAvailable"`
	Ranking               int       `json:"ranking"`
}

// ExplainedCandidate exposes every score component of one catalog entry.
type ExplainedCandidate struct {
	Position      int       `json:"position"`
	University    string    `json:"university"`
	Country       string    `json:"country"`
	ROIScore      float64   `json:"roiScore"`
	MatchScore    float64   `json:"matchScore"`
	Acceptance    float64   `json:"acceptanceProbability"`
	Employability float64   `json:"employability"`
	VisaSuccess   float64   `json:"visaSuccess"`
	AIConfidence  float64   `json:"aiConfidence"`
	RawRisk       float64   `json:"rawRisk"` // clamped to [0,1]
	RiskLevel     RiskLevel `json:"riskLevel"`
	FinalScore    float64   `json:"finalScore"`
	Shortlisted   bool      `json:"shortlisted"`
}
