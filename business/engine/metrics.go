package engine

import (
	"math"
	"strings"

	"eduintel/domain"
	"eduintel/pkg/utils"
)

const (
	roiNormalizer = 50.0
	maxScore      = 100.0

	matchWeightIELTS   = 0.4
	matchWeightBudget  = 0.3
	matchWeightCountry = 0.3
	budgetShortfallDiv = 1.2

	maxCGPABoost  = 1.20
	maxIELTSBoost = 1.15

	penaltyCGPA        = 0.15
	penaltyIELTS       = 0.10
	penaltyBudget      = 0.10
	budgetBufferFactor = 1.2
	lowRiskBelow       = 0.20
	mediumRiskBelow    = 0.35

	confWeightROI        = 0.3
	confWeightMatch      = 0.3
	confWeightAcceptance = 0.4
)

// ROIScore normalizes salary*employment/tuition to [0,100].
// Free tuition earns the maximum.
func ROIScore(u domain.University) float64 {
	if u.Tuition == 0 {
		return maxScore
	}

	raw := (u.AvgSalary * u.EmploymentRate) / u.Tuition
	return utils.Round(math.Min(maxScore, (raw/roiNormalizer)*maxScore), 2)
}

// MatchScore is the [0,1] fit across IELTS, budget and country preference.
func MatchScore(s domain.Student, u domain.University) float64 {
	ielts := 1.0
	if s.IELTS < u.IELTSRequirement {
		ielts = math.Max(0, s.IELTS/u.IELTSRequirement)
	}

	budget := 1.0
	if float64(s.Budget) < u.Tuition {
		budget = math.Max(0, (float64(s.Budget)/u.Tuition)/budgetShortfallDiv)
	}

	country := 0.0
	if strings.EqualFold(s.Country, u.Country) {
		country = 1.0
	}

	score := ielts*matchWeightIELTS + budget*matchWeightBudget + country*matchWeightCountry
	return utils.Round(score, 3)
}

// AcceptanceProbability adjusts the base acceptance rate by how far the
// student clears the CGPA and IELTS requirements, capped at +20% and +15%.
func AcceptanceProbability(s domain.Student, u domain.University) float64 {
	cgpaFactor := 1.0
	if u.CGPARequirement > 0 {
		cgpaFactor = math.Min(maxCGPABoost, s.CGPA/u.CGPARequirement)
	}

	ieltsFactor := 1.0
	if u.IELTSRequirement > 0 {
		ieltsFactor = math.Min(maxIELTSBoost, s.IELTS/u.IELTSRequirement)
	}

	adjusted := u.AcceptanceRate * cgpaFactor * ieltsFactor
	return utils.Round(math.Min(maxScore, adjusted*100), 2)
}

// RawRisk is the university risk index plus profile penalties. It is not
// clamped and may exceed 1.0.
func RawRisk(u domain.University, s domain.Student) float64 {
	risk := u.RiskIndex
	if s.CGPA < u.CGPARequirement {
		risk += penaltyCGPA
	}
	if s.IELTS < u.IELTSRequirement {
		risk += penaltyIELTS
	}
	if float64(s.Budget) < u.Tuition*budgetBufferFactor {
		risk += penaltyBudget
	}
	return risk
}

// RiskLevelFor buckets RawRisk into Low/Medium/High.
func RiskLevelFor(u domain.University, s domain.Student) domain.RiskLevel {
	return bucketRisk(RawRisk(u, s))
}

func bucketRisk(risk float64) domain.RiskLevel {
	switch {
	case risk < lowRiskBelow:
		return domain.RiskLow
	case risk < mediumRiskBelow:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// ClampRisk bounds a raw risk value to [0,1] for display.
func ClampRisk(risk float64) float64 {
	return math.Max(0, math.Min(1, risk))
}

// AIConfidence blends roi [0,100], match [0,1] and acceptance [0,100].
func AIConfidence(roi, match, acceptance float64) float64 {
	confidence := roi*confWeightROI + match*100*confWeightMatch + acceptance*confWeightAcceptance
	return utils.Round(math.Min(maxScore, confidence), 2)
}
