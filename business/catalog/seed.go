package catalog

import "eduintel/domain"

// SeedUniversities is the built-in catalog used on first start and as the
// ingestion fallback.
func SeedUniversities() []domain.University {
	return []domain.University{
		{Name: "University of Toronto", Country: "Canada", Program: "MSc Computer Science", AvgSalary: 85000, Tuition: 32000, VisaRate: 0.85, AcceptanceRate: 0.78, EmploymentRate: 0.89, RiskIndex: 0.15, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 18, ScholarshipAvailable: true},
		{Name: "Technical University of Munich", Country: "Germany", Program: "MSc Data Science", AvgSalary: 72000, Tuition: 3000, VisaRate: 0.82, AcceptanceRate: 0.72, EmploymentRate: 0.91, RiskIndex: 0.18, IELTSRequirement: 6.5, CGPARequirement: 7.5, Ranking: 25, ScholarshipAvailable: true},
		{Name: "University of Melbourne", Country: "Australia", Program: "MSc AI", AvgSalary: 78000, Tuition: 38000, VisaRate: 0.78, AcceptanceRate: 0.80, EmploymentRate: 0.82, RiskIndex: 0.25, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 33, ScholarshipAvailable: false},
		{Name: "University College London", Country: "UK", Program: "MSc Machine Learning", AvgSalary: 82000, Tuition: 35000, VisaRate: 0.72, AcceptanceRate: 0.65, EmploymentRate: 0.87, RiskIndex: 0.22, IELTSRequirement: 7.5, CGPARequirement: 8.5, Ranking: 8, ScholarshipAvailable: true},
		{Name: "National University of Singapore", Country: "Singapore", Program: "MSc Computer Science", AvgSalary: 75000, Tuition: 28000, VisaRate: 0.88, AcceptanceRate: 0.70, EmploymentRate: 0.93, RiskIndex: 0.12, IELTSRequirement: 6.5, CGPARequirement: 8.0, Ranking: 11, ScholarshipAvailable: true},
		{Name: "ETH Zurich", Country: "Switzerland", Program: "MSc Computer Science", AvgSalary: 95000, Tuition: 1500, VisaRate: 0.80, AcceptanceRate: 0.55, EmploymentRate: 0.95, RiskIndex: 0.20, IELTSRequirement: 7.0, CGPARequirement: 9.0, Ranking: 6, ScholarshipAvailable: false},
		{Name: "University of British Columbia", Country: "Canada", Program: "MSc Data Science", AvgSalary: 80000, Tuition: 30000, VisaRate: 0.83, AcceptanceRate: 0.75, EmploymentRate: 0.85, RiskIndex: 0.17, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 35, ScholarshipAvailable: true},
		{Name: "RWTH Aachen", Country: "Germany", Program: "MSc Computer Science", AvgSalary: 70000, Tuition: 2500, VisaRate: 0.81, AcceptanceRate: 0.68, EmploymentRate: 0.88, RiskIndex: 0.19, IELTSRequirement: 6.5, CGPARequirement: 7.5, Ranking: 42, ScholarshipAvailable: false},
		{Name: "University of Sydney", Country: "Australia", Program: "MSc Software Engineering", AvgSalary: 76000, Tuition: 36000, VisaRate: 0.76, AcceptanceRate: 0.75, EmploymentRate: 0.80, RiskIndex: 0.24, IELTSRequirement: 7.0, CGPARequirement: 7.5, Ranking: 41, ScholarshipAvailable: true},
		{Name: "Imperial College London", Country: "UK", Program: "MSc AI & Machine Learning", AvgSalary: 88000, Tuition: 38000, VisaRate: 0.70, AcceptanceRate: 0.60, EmploymentRate: 0.90, RiskIndex: 0.20, IELTSRequirement: 7.5, CGPARequirement: 8.5, Ranking: 6, ScholarshipAvailable: true},
		{Name: "McGill University", Country: "Canada", Program: "MSc Computer Science", AvgSalary: 82000, Tuition: 28000, VisaRate: 0.84, AcceptanceRate: 0.77, EmploymentRate: 0.86, RiskIndex: 0.16, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 30, ScholarshipAvailable: true},
		{Name: "University of Waterloo", Country: "Canada", Program: "MSc Data Science", AvgSalary: 85000, Tuition: 25000, VisaRate: 0.86, AcceptanceRate: 0.73, EmploymentRate: 0.92, RiskIndex: 0.14, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 112, ScholarshipAvailable: true},
		{Name: "TU Delft", Country: "Netherlands", Program: "MSc Computer Science", AvgSalary: 68000, Tuition: 18000, VisaRate: 0.79, AcceptanceRate: 0.70, EmploymentRate: 0.85, RiskIndex: 0.21, IELTSRequirement: 6.5, CGPARequirement: 7.5, Ranking: 47, ScholarshipAvailable: true},
		{Name: "University of Edinburgh", Country: "UK", Program: "MSc AI", AvgSalary: 80000, Tuition: 32000, VisaRate: 0.74, AcceptanceRate: 0.68, EmploymentRate: 0.88, RiskIndex: 0.23, IELTSRequirement: 7.0, CGPARequirement: 8.0, Ranking: 22, ScholarshipAvailable: true},
		{Name: "University of Auckland", Country: "New Zealand", Program: "MSc Computer Science", AvgSalary: 70000, Tuition: 32000, VisaRate: 0.85, AcceptanceRate: 0.80, EmploymentRate: 0.82, RiskIndex: 0.18, IELTSRequirement: 6.5, CGPARequirement: 7.5, Ranking: 68, ScholarshipAvailable: true},
	}
}
