package catalog

import "testing"

func TestWeightOfDefaultsToTen(t *testing.T) {
	// Questions 6 and 11 are listed without explicit weights.
	for _, id := range []int{6, 11} {
		if got := WeightOf(id); got != DefaultWeight {
			t.Fatalf("WeightOf(%d) = %v, want %v", id, got, DefaultWeight)
		}
	}
	if got := WeightOf(1); got != 25 {
		t.Fatalf("WeightOf(1) = %v, want 25", got)
	}
}

func TestCategoryOfUnknownID(t *testing.T) {
	if _, ok := CategoryOf(999); ok {
		t.Fatal("expected unknown id to report ok=false")
	}
	c, ok := CategoryOf(1)
	if !ok || c != CategoryLegal {
		t.Fatalf("CategoryOf(1) = (%q, %v), want (%q, true)", c, ok, CategoryLegal)
	}
}

func TestQuestionsHaveResolvedWeightsAndUniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, q := range Questions() {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if q.Weight <= 0 {
			t.Fatalf("question %d has non-positive weight %v", q.ID, q.Weight)
		}
		if _, ok := CategoryOf(q.ID); !ok {
			t.Fatalf("question %d has no category", q.ID)
		}
	}
	if len(seen) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(seen))
	}
}
