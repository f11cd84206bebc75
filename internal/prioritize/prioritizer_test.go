package prioritize

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/hackseek-app/hackseek/internal/innovation"
)

func sampleInnovations() innovation.Innovations {
	approach := strings.Join([]string{
		"1. **Analysis Phase**: Begin with a thorough assessment of the root causes.",
		"2. **Design Phase**: Develop a comprehensive solution architecture.",
		"3. **Implementation Strategy**: Use agile implementation to build in phased stages.",
	}, "\n")
	return innovation.Innovations{
		Solutions: []innovation.Solution{
			{Title: "Streamline record sharing to reduce delays", Description: "d", Approach: approach},
			{Title: "Enhance consent tracking to better meet compliance", Description: "d", Approach: approach},
		},
		Technologies: []innovation.TechnologySuggestion{
			{Technology: "Electronic Health Records", Category: "Data Management", Relevance: 9},
			{Technology: "API Integration", Category: "Connectivity", Relevance: 6},
		},
	}
}

func TestPrioritizeSortedDescending(t *testing.T) {
	p := New(rand.New(rand.NewSource(1)))
	actions := p.Prioritize(sampleInnovations())
	if len(actions) == 0 {
		t.Fatal("expected actions")
	}
	for i := 1; i < len(actions); i++ {
		if actions[i-1].PriorityScore < actions[i].PriorityScore {
			t.Errorf("actions not sorted at %d: %v < %v", i, actions[i-1].PriorityScore, actions[i].PriorityScore)
		}
	}
}

func TestPrioritizeScoreRanges(t *testing.T) {
	p := New(rand.New(rand.NewSource(2)))
	for _, a := range p.Prioritize(sampleInnovations()) {
		if a.Impact < 5 || a.Impact >= 10 {
			t.Errorf("impact %v, want in [5,10)", a.Impact)
		}
		if a.Difficulty < 3 || a.Difficulty >= 8 {
			t.Errorf("difficulty %v, want in [3,8)", a.Difficulty)
		}
		if want := a.Impact / (a.Difficulty * 0.5); a.PriorityScore != want {
			t.Errorf("priority score %v, want %v", a.PriorityScore, want)
		}
		if a.PriorityScore <= 0 {
			t.Errorf("priority score %v, want > 0", a.PriorityScore)
		}
		if a.Timeframe == "" || a.Resources == "" {
			t.Errorf("action missing timeframe or resources: %+v", a)
		}
	}
}

func TestPrioritizeActionNameUsesTitlePrefix(t *testing.T) {
	p := New(rand.New(rand.NewSource(3)))
	actions := p.Prioritize(sampleInnovations())
	found := false
	for _, a := range actions {
		if a.Action == "1. Analysis Phase for Streamline record sharing" {
			found = true
		}
	}
	if !found {
		t.Error("expected step name combined with the title prefix before ' to '")
	}
}

func TestPrioritizePadsWithTechnologyActions(t *testing.T) {
	inn := sampleInnovations()
	inn.Solutions = inn.Solutions[:1]
	p := New(rand.New(rand.NewSource(4)))
	actions := p.Prioritize(inn)

	found := false
	for _, a := range actions {
		if a.RelatedSolution == "Technology Enhancement" {
			found = true
		}
	}
	if !found {
		t.Error("expected technology implementation actions when fewer than 5 steps parse")
	}
}

func TestPrioritizeGenericFallback(t *testing.T) {
	p := New(rand.New(rand.NewSource(5)))
	actions := p.Prioritize(innovation.Innovations{})
	if len(actions) != 5 {
		t.Fatalf("got %d fallback actions, want 5", len(actions))
	}
	for _, a := range actions {
		if a.PriorityScore <= 0 {
			t.Errorf("fallback action score %v, want > 0", a.PriorityScore)
		}
	}
}
