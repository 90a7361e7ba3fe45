// Package scoring implements the deterministic compliance scoring engine.
// It maps questionnaire answers (plus conditional follow-ups) to a weighted
// score with per-category breakdowns, qualitative findings, and a risk
// forecast. The package deliberately imports nothing beyond the catalog and
// the standard library so it stays pure and trivially testable.
package scoring

// Probability labels how likely a forecast risk is to materialise.
type Probability string

const (
	ProbabilityHigh   Probability = "high"
	ProbabilityMedium Probability = "medium"
	ProbabilityLow    Probability = "low"
)

// Status is the qualitative bucket derived from a category score.
type Status string

const (
	StatusExcellent      Status = "excellent"
	StatusGood           Status = "good"
	StatusNeedsAttention Status = "needs-attention"
	StatusCritical       Status = "critical"
)

// StatusFor buckets a 0-100 score.
func StatusFor(score int) Status {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 50:
		return StatusNeedsAttention
	default:
		return StatusCritical
	}
}

// Risk is one entry in the forecast: what exposure exists, what it costs,
// and how likely it is.
type Risk struct {
	Type        string      `json:"type"`
	Penalty     string      `json:"penalty"`
	Probability Probability `json:"probability"`
}

// RiskForecast groups forecast risks under a fixed horizon label.
type RiskForecast struct {
	Period string `json:"period"`
	Risks  []Risk `json:"risks"`
}

// CategoryScore is the per-category breakdown entry.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Status   Status `json:"status"`
	Insight  string `json:"insight"`
}

// ComplianceResult is the complete output of one scoring run. It is produced
// fresh on every invocation and serialises as plain JSON.
type ComplianceResult struct {
	OverallScore   int             `json:"overallScore"`
	CategoryScores []CategoryScore `json:"categoryScores"`
	Strengths      []string        `json:"strengths"`
	RedFlags       []string        `json:"redFlags"`
	RiskForecast   RiskForecast    `json:"riskForecast"`
}

// Output caps. Truncation keeps the first entries in evaluation order;
// the catalog lists higher-impact questions first.
const (
	maxStrengths = 8
	maxRedFlags  = 8
	maxRisks     = 6
)

// ForecastPeriod is the fixed horizon label attached to every forecast.
const ForecastPeriod = "next 12 months"
