package ingest

import "eduintel/domain"

// Record is one university entry of an external catalog feed.
type Record struct {
	Name                 string  `json:"name" validate:"required"`
	Country              string  `json:"country" validate:"required"`
	Program              string  `json:"program" validate:"required"`
	AvgSalary            float64 `json:"avg_salary" validate:"gt=0"`
	Tuition              float64 `json:"tuition" validate:"gte=0"`
	VisaRate             float64 `json:"visa_rate" validate:"gte=0,lte=1"`
	AcceptanceRate       float64 `json:"acceptance_rate" validate:"gte=0,lte=1"`
	EmploymentRate       float64 `json:"employment_rate" validate:"gte=0,lte=1"`
	RiskIndex            float64 `json:"risk_index" validate:"gte=0,lte=1"`
	IELTSRequirement     float64 `json:"ielts_requirement" validate:"gte=0,lte=9"`
	CGPARequirement      float64 `json:"cgpa_requirement" validate:"gte=0,lte=10"`
	Ranking              int     `json:"ranking" validate:"gt=0"`
	ScholarshipAvailable bool    `json:"scholarship_available"`
}

func (r Record) University() domain.University {
	return domain.University{
		Name:                 r.Name,
		Country:              r.Country,
		Program:              r.Program,
		AvgSalary:            r.AvgSalary,
		Tuition:              r.Tuition,
		VisaRate:             r.VisaRate,
		AcceptanceRate:       r.AcceptanceRate,
		EmploymentRate:       r.EmploymentRate,
		RiskIndex:            r.RiskIndex,
		IELTSRequirement:     r.IELTSRequirement,
		CGPARequirement:      r.CGPARequirement,
		Ranking:              r.Ranking,
		ScholarshipAvailable: r.ScholarshipAvailable,
	}
}

func fromUniversity(u domain.University) Record {
	return Record{
		Name:                 u.Name,
		Country:              u.Country,
		Program:              u.Program,
		AvgSalary:            u.AvgSalary,
		Tuition:              u.Tuition,
		VisaRate:             u.VisaRate,
		AcceptanceRate:       u.AcceptanceRate,
		EmploymentRate:       u.EmploymentRate,
		RiskIndex:            u.RiskIndex,
		IELTSRequirement:     u.IELTSRequirement,
		CGPARequirement:      u.CGPARequirement,
		Ranking:              u.Ranking,
		ScholarshipAvailable: u.ScholarshipAvailable,
	}
}
