package scoring

import (
	"math"

	"complyscore/internal/catalog"
)

// accumulator tracks one category's running totals for a single run. max only
// grows for questions actually answered, so a partial assessment scores out
// of what was asked rather than the full catalog.
type accumulator struct {
	total    float64
	max      float64
	insights []string
}

// Score maps an answer set to a ComplianceResult. It is a pure function:
// identical input yields byte-identical output, malformed input never
// produces an error. Unknown question ids are ignored, missing or
// non-numeric follow-ups default to a count of 1, and unrecognised answer
// values fall into each question's partial-credit branch.
//
// Questions are evaluated in catalog order, not map order, which keeps the
// output deterministic and means truncated lists retain the highest-priority
// entries.
func Score(answers, followUps map[int]string) ComplianceResult {
	accs := make(map[catalog.Category]*accumulator, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		accs[c] = &accumulator{}
	}

	strengths := []string{}
	redFlags := []string{}
	risks := []Risk{}

	for _, q := range catalog.Questions() {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		rule, ok := rules[q.ID]
		if !ok {
			continue
		}
		acc := accs[q.Category]
		out := rule(answer, followUps[q.ID], q.Weight)

		acc.max += q.Weight
		acc.total += clampPoints(out.points, q.Weight)
		acc.insights = append(acc.insights, out.insight)

		if out.strength != "" {
			strengths = append(strengths, out.strength)
		}
		if out.redFlag != "" {
			redFlags = append(redFlags, out.redFlag)
		}
		if out.risk != nil {
			risks = append(risks, *out.risk)
		}
	}

	var grandTotal, grandMax float64
	categoryScores := make([]CategoryScore, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		acc := accs[c]
		grandTotal += acc.total
		grandMax += acc.max

		score := ratioScore(acc.total, acc.max)
		insight := ""
		if len(acc.insights) > 0 {
			insight = acc.insights[0]
		}
		categoryScores = append(categoryScores, CategoryScore{
			Category: string(c),
			Score:    score,
			Status:   StatusFor(score),
			Insight:  insight,
		})
	}

	return ComplianceResult{
		OverallScore:   ratioScore(grandTotal, grandMax),
		CategoryScores: categoryScores,
		Strengths:      truncate(strengths, maxStrengths),
		RedFlags:       truncate(redFlags, maxRedFlags),
		RiskForecast: RiskForecast{
			Period: ForecastPeriod,
			Risks:  truncateRisks(risks, maxRisks),
		},
	}
}

// ratioScore rounds total/max to an integer percentage, short-circuiting
// max == 0 to 0 so an empty run never divides by zero.
func ratioScore(total, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(total / max * 100))
}

func clampPoints(points, weight float64) float64 {
	if points < 0 {
		return 0
	}
	if points > weight {
		return weight
	}
	return points
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func truncateRisks(s []Risk, n int) []Risk {
	if len(s) > n {
		return s[:n]
	}
	return s
}
