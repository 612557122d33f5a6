package domain

import "time"

type ReviewStatus string

const (
	ReviewAIGenerated ReviewStatus = "AI Generated"
	ReviewUnderReview ReviewStatus = "Under Review"
	ReviewApproved    ReviewStatus = "Approved"
	ReviewModified    ReviewStatus = "Modified"
	ReviewRejected    ReviewStatus = "Rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewAIGenerated, ReviewUnderReview, ReviewApproved, ReviewModified, ReviewRejected:
		return true
	}
	return false
}

type CounselorReview struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	StudentID   uint         `gorm:"column:student_id;not null;index" json:"student_id"`
	Status      ReviewStatus `gorm:"column:status;not null" json:"status"`
	Comment     string       `gorm:"column:comment;type:text" json:"comment"`
	CounselorID string       `gorm:"column:counselor_id" json:"counselor_id"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CounselorReview) TableName() string {
	return "counselor_reviews"
}
