package scoring

// CategoryDisplay is a CategoryScore with presentation metadata attached.
// Pure display concern: scores and ordering pass through untouched.
type CategoryDisplay struct {
	CategoryScore
	Color string `json:"color"`
	Label string `json:"label"`
}

// styleFor maps a status to its fixed display tokens.
func styleFor(s Status) (color, label string) {
	switch s {
	case StatusExcellent:
		return "green", "Excellent"
	case StatusGood:
		return "blue", "Good"
	case StatusNeedsAttention:
		return "amber", "Needs Attention"
	default:
		return "red", "Critical"
	}
}

// FormatCategories derives display buckets from a result's category
// breakdown, preserving order.
func FormatCategories(res ComplianceResult) []CategoryDisplay {
	out := make([]CategoryDisplay, 0, len(res.CategoryScores))
	for _, cs := range res.CategoryScores {
		color, label := styleFor(cs.Status)
		out = append(out, CategoryDisplay{CategoryScore: cs, Color: color, Label: label})
	}
	return out
}
