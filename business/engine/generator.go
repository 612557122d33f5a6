package engine

import (
	"sort"

	"eduintel/domain"
	"eduintel/pkg/utils"
)

// DefaultLimit is the shortlist size.
const DefaultLimit = 5

const (
	finalWeightROI           = 0.4
	finalWeightAcceptance    = 0.3
	finalWeightEmployability = 0.2
	finalWeightVisa          = 0.1
)

// Catalog is a read-only snapshot of universities for one or more scoring
// passes. The engine never mutates it, so it can be shared between
// concurrent callers.
type Catalog []domain.University

// ScoredCandidate holds every metric computed for one university.
type ScoredCandidate struct {
	University    domain.University
	ROI           float64
	Match         float64
	Acceptance    float64
	Employability float64
	VisaSuccess   float64
	RawRisk       float64
	RiskLevel     domain.RiskLevel
	AIConfidence  float64
	FinalScore    float64
}

// Shortlist is the outcome of one scoring pass: public results plus the
// records to hand to persistence. Both are in rank order.
type Shortlist struct {
	Results []domain.RecommendationResult
	Records []domain.Recommendation
}

// FinalScore is the convex combination used only for ordering.
// Match is deliberately not part of it.
func FinalScore(roi, acceptance, employability, visaSuccess float64) float64 {
	return finalWeightROI*(roi/100) +
		finalWeightAcceptance*(acceptance/100) +
		finalWeightEmployability*(employability/100) +
		finalWeightVisa*(visaSuccess/100)
}

// Score computes all metrics of one (student, university) pair.
func Score(s domain.Student, u domain.University) ScoredCandidate {
	roi := ROIScore(u)
	match := MatchScore(s, u)
	acceptance := AcceptanceProbability(s, u)
	employability := u.EmploymentRate * 100
	visa := u.VisaRate * 100
	raw := RawRisk(u, s)

	return ScoredCandidate{
		University:    u,
		ROI:           roi,
		Match:         match,
		Acceptance:    acceptance,
		Employability: employability,
		VisaSuccess:   visa,
		RawRisk:       raw,
		RiskLevel:     bucketRisk(raw),
		AIConfidence:  AIConfidence(roi, match, acceptance),
		FinalScore:    FinalScore(roi, acceptance, employability, visa),
	}
}

// Rank scores the whole catalog and orders it by final score, highest
// first. Equal scores keep catalog order.
func Rank(s domain.Student, catalog Catalog) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(catalog))
	for _, u := range catalog {
		scored = append(scored, Score(s, u))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	return scored
}

// Generate returns the top DefaultLimit universities for the student.
func Generate(s domain.Student, catalog Catalog) Shortlist {
	return GenerateN(s, catalog, DefaultLimit)
}

// GenerateN is Generate with an explicit shortlist size.
func GenerateN(s domain.Student, catalog Catalog, limit int) Shortlist {
	if len(catalog) == 0 || limit <= 0 {
		return Shortlist{
			Results: []domain.RecommendationResult{},
			Records: []domain.Recommendation{},
		}
	}

	ranked := Rank(s, catalog)
	if limit > len(ranked) {
		limit = len(ranked)
	}
	top := ranked[:limit]

	out := Shortlist{
		Results: make([]domain.RecommendationResult, 0, len(top)),
		Records: make([]domain.Recommendation, 0, len(top)),
	}
	for i, c := range top {
		out.Results = append(out.Results, toResult(i+1, c))
		out.Records = append(out.Records, toRecord(s.ID, c))
	}

	return out
}

// Explain returns every catalog entry with all score components in final
// order, marking the ones that make the shortlist.
func Explain(s domain.Student, catalog Catalog) []domain.ExplainedCandidate {
	ranked := Rank(s, catalog)

	out := make([]domain.ExplainedCandidate, 0, len(ranked))
	for i, c := range ranked {
		out = append(out, domain.ExplainedCandidate{
			Position:      i + 1,
			University:    c.University.Name,
			Country:       c.University.Country,
			ROIScore:      c.ROI,
			MatchScore:    c.Match,
			Acceptance:    c.Acceptance,
			Employability: c.Employability,
			VisaSuccess:   c.VisaSuccess,
			AIConfidence:  c.AIConfidence,
			RawRisk:       ClampRisk(c.RawRisk),
			RiskLevel:     c.RiskLevel,
			FinalScore:    utils.Round(c.FinalScore, 4),
			Shortlisted:   i < DefaultLimit,
		})
	}
	return out
}

func toResult(rank int, c ScoredCandidate) domain.RecommendationResult {
	u := c.University
	return domain.RecommendationResult{
		ID:                    rank,
		University:            u.Name,
		Country:               u.Country,
		Program:               u.Program,
		ROIScore:              c.ROI,
		AcceptanceProbability: c.Acceptance,
		Employability:         c.Employability,
		VisaSuccess:           c.VisaSuccess,
		AIConfidence:          c.AIConfidence,
		RiskLevel:             c.RiskLevel,
		TuitionFee:            u.Tuition,
		ScholarshipAvailable:  u.ScholarshipAvailable,
		Ranking:               u.Ranking,
	}
}

func toRecord(studentID uint, c ScoredCandidate) domain.Recommendation {
	return domain.Recommendation{
		StudentID:             studentID,
		UniversityID:          c.University.ID,
		ROIScore:              c.ROI,
		AcceptanceProbability: c.Acceptance,
		Employability:         c.Employability,
		VisaSuccess:           c.VisaSuccess,
		AIConfidence:          c.AIConfidence,
		RiskLevel:             c.RiskLevel,
	}
}
