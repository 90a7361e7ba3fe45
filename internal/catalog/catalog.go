// Package catalog holds the static questionnaire registry: prompts,
// category assignments, and scoring weights. It is loaded once and never
// mutated; everything else in the scoring path reads from it.
package catalog

// Category names the fixed compliance areas an assessment is scored across.
type Category string

const (
	CategoryLegal     Category = "Company & Legal Structure"
	CategoryTax       Category = "Taxation & GST"
	CategoryIP        Category = "Intellectual Property"
	CategoryLicenses  Category = "Certifications & Industry Licenses"
	CategoryFinancial Category = "Financial Health & Risk"
)

// Categories returns every category in display order. The scoring engine
// depends on this order being stable so breakdowns come out identical run
// to run.
func Categories() []Category {
	return []Category{
		CategoryLegal,
		CategoryTax,
		CategoryIP,
		CategoryLicenses,
		CategoryFinancial,
	}
}

// Question is a single catalog entry. IDs are stable across catalog
// versions; stored reports reference them.
type Question struct {
	ID       int      `json:"id"`
	Prompt   string   `json:"prompt"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// DefaultWeight applies to questions the rule table knows but the weight
// table does not list. Several catalog entries rely on this fallback.
const DefaultWeight = 10

// questions is ordered by evaluation priority: higher-impact questions come
// first within their category, so strength/red-flag truncation keeps the
// entries that matter most.
var questions = []Question{
	{ID: 1, Prompt: "Is your company incorporated (Private Limited, LLP, or OPC)?", Category: CategoryLegal},
	{ID: 2, Prompt: "Have you filed your annual ROC returns (AOC-4, MGT-7) for the last financial year?", Category: CategoryLegal},
	{ID: 3, Prompt: "Is DIN KYC completed for all directors?", Category: CategoryLegal},
	{ID: 4, Prompt: "Is your business registered under GST?", Category: CategoryTax},
	{ID: 5, Prompt: "Have your GST returns been filed on time?", Category: CategoryTax},
	{ID: 6, Prompt: "Have you implemented any tax planning measures (presumptive taxation, eligible deductions)?", Category: CategoryTax},
	{ID: 7, Prompt: "Is your brand name trademarked?", Category: CategoryIP},
	{ID: 8, Prompt: "Do you have patents or proprietary technology?", Category: CategoryIP},
	{ID: 9, Prompt: "Have all founders and employees signed IP assignment agreements?", Category: CategoryIP},
	{ID: 10, Prompt: "Do you hold the licenses required for your industry (FSSAI, Shops & Establishment, trade license)?", Category: CategoryLicenses},
	{ID: 11, Prompt: "Is your startup DPIIT-recognized?", Category: CategoryLicenses},
	{ID: 12, Prompt: "Are mandatory employee registrations (PF/ESI) in place?", Category: CategoryLicenses},
	{ID: 13, Prompt: "Are your books of accounts audited and up to date?", Category: CategoryFinancial},
	{ID: 14, Prompt: "Do you have outstanding overdue liabilities (loans, statutory dues, vendor payments)?", Category: CategoryFinancial},
	{ID: 15, Prompt: "Do you maintain a financial runway of at least six months?", Category: CategoryFinancial},
}

// weights lists explicit per-question maximum point contributions. Questions
// absent here (6 and 11) score out of DefaultWeight.
var weights = map[int]float64{
	1:  25,
	2:  20,
	3:  15,
	4:  20,
	5:  25,
	7:  20,
	8:  15,
	9:  15,
	10: 20,
	12: 15,
	13: 20,
	14: 20,
	15: 15,
}

var byID = func() map[int]Question {
	m := make(map[int]Question, len(questions))
	for _, q := range questions {
		q.Weight = WeightOf(q.ID)
		m[q.ID] = q
	}
	return m
}()

// Questions returns the full catalog in evaluation order, with resolved
// weights.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Weight = WeightOf(q.ID)
		out[i] = q
	}
	return out
}

// WeightOf returns the configured weight for a question, or DefaultWeight
// when the catalog lists the question without an explicit weight.
func WeightOf(id int) float64 {
	if w, ok := weights[id]; ok {
		return w
	}
	return DefaultWeight
}

// CategoryOf returns the owning category for a question id. Unknown ids
// report ok=false and must be skipped by callers; they contribute to no
// category.
func CategoryOf(id int) (Category, bool) {
	q, ok := byID[id]
	if !ok {
		return "", false
	}
	return q.Category, true
}
