package domain

import "time"

type University struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Country              string    `gorm:"column:country;not null" json:"country"`
	Program              string    `gorm:"column:program;not null" json:"program"`
	AvgSalary            float64   `gorm:"column:avg_salary;not null" json:"avg_salary"`
	Tuition              float64   `gorm:"column:tuition;not null" json:"tuition"`
	VisaRate             float64   `gorm:"column:visa_rate;not null" json:"visa_rate"`
	AcceptanceRate       float64   `gorm:"column:acceptance_rate;not null" json:"acceptance_rate"`
	EmploymentRate       float64   `gorm:"column:employment_rate;not null" json:"employment_rate"`
	RiskIndex            float64   `gorm:"column:risk_index;not null" json:"risk_index"`
	IELTSRequirement     float64   `gorm:"column:ielts_requirement;not null" json:"ielts_requirement"`
	CGPARequirement      float64   `gorm:"column:cgpa_requirement;not null" json:"cgpa_requirement"`
	Ranking              int       `gorm:"column:ranking;not null" json:"ranking"`
	ScholarshipAvailable bool      `gorm:"column:scholarship_available;not null" json:"scholarship_available"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (University) TableName() string {
	return "universities"
}
