package scoring

import (
	"reflect"
	"strings"
	"testing"

	"complyscore/internal/catalog"
)

func TestScoreEmptyInputBaseline(t *testing.T) {
	res := Score(map[int]string{}, map[int]string{})

	if res.OverallScore != 0 {
		t.Fatalf("expected overall 0 for empty input, got %d", res.OverallScore)
	}
	if got, want := len(res.CategoryScores), len(catalog.Categories()); got != want {
		t.Fatalf("expected %d categories, got %d", want, got)
	}
	for _, cs := range res.CategoryScores {
		if cs.Score != 0 {
			t.Fatalf("category %q: expected score 0, got %d", cs.Category, cs.Score)
		}
		if cs.Insight != "" {
			t.Fatalf("category %q: expected empty insight, got %q", cs.Category, cs.Insight)
		}
	}
	if len(res.Strengths) != 0 || len(res.RedFlags) != 0 || len(res.RiskForecast.Risks) != 0 {
		t.Fatalf("expected empty lists, got strengths=%d flags=%d risks=%d",
			len(res.Strengths), len(res.RedFlags), len(res.RiskForecast.Risks))
	}
}

func TestScoreDeterminism(t *testing.T) {
	answers := map[int]string{1: "Yes", 3: "No", 5: "No", 8: "Filed", 14: "Yes"}
	followUps := map[int]string{3: "2", 5: "4"}

	first := Score(answers, followUps)
	second := Score(answers, followUps)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []map[int]string{
		{},
		{1: "Yes"},
		{1: "No", 2: "No", 3: "No", 4: "No", 5: "No"},
		{1: "garbage", 8: "???", 14: "maybe"},
	}
	for _, answers := range inputs {
		res := Score(answers, nil)
		if res.OverallScore < 0 || res.OverallScore > 100 {
			t.Fatalf("overall %d out of bounds for %v", res.OverallScore, answers)
		}
		for _, cs := range res.CategoryScores {
			if cs.Score < 0 || cs.Score > 100 {
				t.Fatalf("category %q score %d out of bounds for %v", cs.Category, cs.Score, answers)
			}
		}
	}
}

func TestScoreFullMarksSubset(t *testing.T) {
	// Questions 1, 4, 5 carry weights 25, 20, 25; answering only these with
	// full credit must score 100 overall and 100 in both touched categories.
	res := Score(map[int]string{1: "Yes", 4: "Yes", 5: "Yes"}, nil)

	if res.OverallScore != 100 {
		t.Fatalf("expected overall 100, got %d", res.OverallScore)
	}
	if got := categoryScore(t, res, catalog.CategoryLegal); got != 100 {
		t.Fatalf("expected legal category 100, got %d", got)
	}
	if got := categoryScore(t, res, catalog.CategoryTax); got != 100 {
		t.Fatalf("expected tax category 100, got %d", got)
	}
	if len(res.Strengths) != 3 {
		t.Fatalf("expected 3 strengths, got %d: %v", len(res.Strengths), res.Strengths)
	}
	if len(res.RedFlags) != 0 {
		t.Fatalf("expected no red flags, got %v", res.RedFlags)
	}
}

func TestScoreIncorporationRedFlag(t *testing.T) {
	res := Score(map[int]string{1: "No"}, nil)

	if got := categoryScore(t, res, catalog.CategoryLegal); got != 0 {
		t.Fatalf("expected legal category 0, got %d", got)
	}
	if len(res.RedFlags) != 1 || !strings.Contains(res.RedFlags[0], "incorporated") {
		t.Fatalf("expected incorporation red flag, got %v", res.RedFlags)
	}
	if len(res.RiskForecast.Risks) != 1 {
		t.Fatalf("expected one forecast risk, got %d", len(res.RiskForecast.Risks))
	}
	if res.RiskForecast.Risks[0].Probability != ProbabilityHigh {
		t.Fatalf("expected high probability, got %q", res.RiskForecast.Risks[0].Probability)
	}
}

func TestScoreGSTFollowUpScalesMessages(t *testing.T) {
	res := Score(map[int]string{5: "No"}, map[int]string{5: "3"})

	if len(res.RedFlags) != 1 || !strings.Contains(res.RedFlags[0], "3 month(s)") {
		t.Fatalf("expected flag reflecting 3 months, got %v", res.RedFlags)
	}
	if len(res.RiskForecast.Risks) != 1 {
		t.Fatalf("expected one risk, got %d", len(res.RiskForecast.Risks))
	}
	risk := res.RiskForecast.Risks[0]
	if !strings.Contains(risk.Penalty, "4500") {
		t.Fatalf("expected penalty scaled by 3 months, got %q", risk.Penalty)
	}
	if risk.Probability != ProbabilityHigh {
		t.Fatalf("expected high probability at 3 missed months, got %q", risk.Probability)
	}
}

func TestScoreGSTFollowUpDefaultsToOne(t *testing.T) {
	res := Score(map[int]string{5: "No"}, nil)

	if len(res.RedFlags) != 1 || !strings.Contains(res.RedFlags[0], "1 month(s)") {
		t.Fatalf("expected default count of 1, got %v", res.RedFlags)
	}
	if res.RiskForecast.Risks[0].Probability != ProbabilityMedium {
		t.Fatalf("expected medium probability for one missed month, got %q",
			res.RiskForecast.Risks[0].Probability)
	}
}

func TestScoreDINKYCDefaultsToOneDirector(t *testing.T) {
	res := Score(map[int]string{3: "No"}, nil)

	if len(res.RedFlags) != 1 || !strings.Contains(res.RedFlags[0], "1 director(s)") {
		t.Fatalf("expected flag for 1 director, got %v", res.RedFlags)
	}
	if got := res.RiskForecast.Risks[0].Penalty; !strings.Contains(got, "₹5000 ") {
		t.Fatalf("expected penalty for a single director, got %q", got)
	}
}

func TestScoreDINKYCNonNumericFollowUp(t *testing.T) {
	res := Score(map[int]string{3: "No"}, map[int]string{3: "a few"})

	if len(res.RedFlags) != 1 || !strings.Contains(res.RedFlags[0], "1 director(s)") {
		t.Fatalf("expected non-numeric follow-up to default to 1, got %v", res.RedFlags)
	}
}

func TestScoreMonotonicNoToYes(t *testing.T) {
	base := map[int]string{1: "No", 2: "No", 4: "Yes", 13: "No"}
	for _, id := range []int{1, 2, 13} {
		before := Score(base, nil)

		flipped := make(map[int]string, len(base))
		for k, v := range base {
			flipped[k] = v
		}
		flipped[id] = "Yes"
		after := Score(flipped, nil)

		if after.OverallScore < before.OverallScore {
			t.Fatalf("q%d No->Yes dropped overall %d -> %d", id, before.OverallScore, after.OverallScore)
		}
		cat, _ := catalog.CategoryOf(id)
		if categoryScore(t, after, cat) < categoryScore(t, before, cat) {
			t.Fatalf("q%d No->Yes dropped category %q score", id, cat)
		}
	}
}

func TestScoreListCaps(t *testing.T) {
	// Worst possible answers: every flagged question fires.
	bad := map[int]string{}
	for _, q := range catalog.Questions() {
		if q.ID == 14 {
			bad[q.ID] = "Yes" // inverted question
			continue
		}
		bad[q.ID] = "No"
	}
	res := Score(bad, nil)
	if len(res.RedFlags) > 8 {
		t.Fatalf("red flags exceed cap: %d", len(res.RedFlags))
	}
	if len(res.RiskForecast.Risks) > 6 {
		t.Fatalf("risks exceed cap: %d", len(res.RiskForecast.Risks))
	}

	// Best possible answers: every strength fires.
	good := map[int]string{}
	for _, q := range catalog.Questions() {
		if q.ID == 14 {
			good[q.ID] = "No"
			continue
		}
		good[q.ID] = "Yes"
	}
	res = Score(good, nil)
	if len(res.Strengths) > 8 {
		t.Fatalf("strengths exceed cap: %d", len(res.Strengths))
	}
	if res.OverallScore != 100 {
		t.Fatalf("expected perfect assessment to score 100, got %d", res.OverallScore)
	}
}

func TestScoreIgnoresUnknownQuestionIDs(t *testing.T) {
	known := map[int]string{1: "Yes", 4: "No"}
	withUnknown := map[int]string{1: "Yes", 4: "No", 999: "Yes", -3: "No"}

	if !reflect.DeepEqual(Score(known, nil), Score(withUnknown, nil)) {
		t.Fatal("unknown question ids changed the result")
	}
}

func TestScoreUnrecognisedAnswerGetsPartialCredit(t *testing.T) {
	sure := Score(map[int]string{1: "No"}, nil)
	unsure := Score(map[int]string{1: "Not Sure"}, nil)

	if unsure.OverallScore <= sure.OverallScore {
		t.Fatalf("expected partial credit for uncertain answer: unsure=%d sure=%d",
			unsure.OverallScore, sure.OverallScore)
	}
	if len(unsure.RedFlags) != 0 {
		t.Fatalf("uncertain answer should not raise a flag, got %v", unsure.RedFlags)
	}
}

func TestScoreOverallWeighsByPointVolume(t *testing.T) {
	// Legal earns 0 of 25, tax earns 10 of 10 (tax planning default weight).
	// Overall must be the ratio of grand totals (10/35 = 29%), not the mean
	// of the category percentages (50%).
	res := Score(map[int]string{1: "No", 6: "Yes"}, nil)
	if res.OverallScore != 29 {
		t.Fatalf("expected grand-total weighting (29), got %d", res.OverallScore)
	}
}

func TestStatusThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Status
	}{
		{100, StatusExcellent},
		{85, StatusExcellent},
		{84, StatusGood},
		{70, StatusGood},
		{69, StatusNeedsAttention},
		{50, StatusNeedsAttention},
		{49, StatusCritical},
		{0, StatusCritical},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.score); got != tc.want {
			t.Fatalf("StatusFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestScoreCategoryInsightIsFirstRecorded(t *testing.T) {
	res := Score(map[int]string{4: "Yes", 5: "No", 6: "No"}, nil)
	if got := categoryInsight(t, res, catalog.CategoryTax); got != "GST registration in place" {
		t.Fatalf("expected first insight for tax category, got %q", got)
	}
}

func categoryScore(t *testing.T, res ComplianceResult, c catalog.Category) int {
	t.Helper()
	for _, cs := range res.CategoryScores {
		if cs.Category == string(c) {
			return cs.Score
		}
	}
	t.Fatalf("category %q missing from result", c)
	return 0
}

func categoryInsight(t *testing.T, res ComplianceResult, c catalog.Category) string {
	t.Helper()
	for _, cs := range res.CategoryScores {
		if cs.Category == string(c) {
			return cs.Insight
		}
	}
	t.Fatalf("category %q missing from result", c)
	return ""
}
