package tips

import (
	"math/rand"
	"testing"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/scoring"
)

func newSelector() *Selector {
	return NewSelector(scoring.New(rand.New(rand.NewSource(1))))
}

func TestSelectHealthcareProblem(t *testing.T) {
	feats := analysis.NewExtractor().Extract(
		"Healthcare providers cannot easily share patient records between hospitals due to privacy regulations.")
	out := newSelector().Select(feats)

	if out.DomainAnalysis.PrimaryDomain != "health" {
		t.Errorf("primary domain = %q, want health", out.DomainAnalysis.PrimaryDomain)
	}
	if out.DomainAnalysis.PrimaryUser != "healthcare_providers" {
		t.Errorf("primary user = %q, want healthcare_providers", out.DomainAnalysis.PrimaryUser)
	}
	if out.SpecializedTips.DomainTip.Title != "Healthcare Data Privacy" {
		t.Errorf("domain tip = %q, want Healthcare Data Privacy", out.SpecializedTips.DomainTip.Title)
	}
}

func TestSelectPrimariesAlwaysSet(t *testing.T) {
	feats := analysis.NewExtractor().Extract("Unrelated text about baking sourdough bread at home.")
	out := newSelector().Select(feats)

	if out.DomainAnalysis.PrimaryDomain != "health" {
		t.Errorf("zero-match primary domain = %q, want first table category", out.DomainAnalysis.PrimaryDomain)
	}
	if out.DomainAnalysis.PrimaryApproach != "mobile" {
		t.Errorf("zero-match primary approach = %q, want first table category", out.DomainAnalysis.PrimaryApproach)
	}
	if out.DomainAnalysis.PrimaryUser != "consumers" {
		t.Errorf("zero-match primary user = %q, want first table category", out.DomainAnalysis.PrimaryUser)
	}
	if out.SpecializedTips.DomainTip.Title == "" || out.SpecializedTips.UserTip.Title == "" {
		t.Error("specialized tips must never be zero-valued")
	}
}

func TestSelectFixedCardinalities(t *testing.T) {
	feats := analysis.NewExtractor().Extract(
		"Build a mobile app so commuters can plan bus and train trips across the city.")
	out := newSelector().Select(feats)

	if len(out.SelectedTips.PlanningTips) != 3 {
		t.Errorf("planning tips = %d, want 3", len(out.SelectedTips.PlanningTips))
	}
	if out.SelectedTips.PlanningTips[0].Title != "Define MVP" {
		t.Errorf("top planning tip = %q, want Define MVP", out.SelectedTips.PlanningTips[0].Title)
	}
	if len(out.SelectedTips.TechTips) != 2 {
		t.Errorf("tech tips = %d, want 2", len(out.SelectedTips.TechTips))
	}
	if len(out.SelectedTips.PresentationTips) != 2 {
		t.Errorf("presentation tips = %d, want 2", len(out.SelectedTips.PresentationTips))
	}
	if out.SelectedTips.PresentationTips[0].Title != "Prepare a Fallback Demo" {
		t.Errorf("first presentation tip = %q, want the fallback demo tip", out.SelectedTips.PresentationTips[0].Title)
	}
	if len(out.SelectedTips.JudgeInsights) != 2 {
		t.Errorf("judge insights = %d, want 2", len(out.SelectedTips.JudgeInsights))
	}
	if len(out.SelectedTips.Pitfalls) != 2 {
		t.Errorf("pitfalls = %d, want 2", len(out.SelectedTips.Pitfalls))
	}
	for _, p := range out.SelectedTips.Pitfalls {
		if p.Impact != "High" {
			t.Errorf("pitfall %q impact %q, want High", p.Title, p.Impact)
		}
	}
}

func TestTechTipsFollowApproach(t *testing.T) {
	mobile := techTips("mobile")
	if len(mobile) != 2 {
		t.Fatalf("mobile tech tips = %d, want 2", len(mobile))
	}
	other := techTips("machine_learning")
	if other[0].Title != "Use Familiar Technologies" {
		t.Errorf("non-web first tech tip = %q, want Use Familiar Technologies", other[0].Title)
	}
}

func TestComplexityBands(t *testing.T) {
	cases := []struct {
		complexity float64
		title      string
	}{
		{0.1, "Execution Over Complexity"},
		{0.5, "Balanced Scope Management"},
		{0.9, "Complexity Decomposition"},
	}
	for _, tc := range cases {
		feats := analysis.TextFeatures{Text: "placeholder", Complexity: tc.complexity}
		out := newSelector().Select(feats)
		if got := out.SpecializedTips.ComplexityTip.Title; got != tc.title {
			t.Errorf("complexity %v tip = %q, want %q", tc.complexity, got, tc.title)
		}
	}
}
