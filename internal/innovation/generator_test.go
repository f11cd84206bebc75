package innovation

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/insights"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/scoring"
)

const problemText = "Healthcare providers cannot easily share patient records between hospitals due to privacy regulations."

func pipelineInputs(t *testing.T) (analysis.TextFeatures, insights.Insights) {
	t.Helper()
	feats := analysis.NewExtractor().Extract(problemText)
	scorer := scoring.New(rand.New(rand.NewSource(1)))
	relevance := scorer.Score(feats, knowledge.InsightDomainKeywords)
	ins := insights.NewGenerator(rand.New(rand.NewSource(2))).Generate(feats, relevance, 3)
	return feats, ins
}

func TestGenerateSolutionCount(t *testing.T) {
	feats, ins := pipelineInputs(t)
	for level := 1; level <= 5; level++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(level))))
		out := g.Generate(feats, ins, level)

		want := level + 1
		if want > 5 {
			want = 5
		}
		if len(out.Solutions) != want {
			t.Errorf("level %d: %d solutions, want %d", level, len(out.Solutions), want)
		}
		for _, sol := range out.Solutions {
			if sol.Title == "" || sol.Description == "" || sol.Approach == "" {
				t.Errorf("level %d: solution has empty fields: %+v", level, sol)
			}
			if strings.Contains(sol.Title, "{") || strings.Contains(sol.Description, "{") {
				t.Errorf("level %d: unfilled template slot in %q / %q", level, sol.Title, sol.Description)
			}
		}
	}
}

func TestApproachStepCountTracksLevel(t *testing.T) {
	feats, ins := pipelineInputs(t)
	for level := 1; level <= 5; level++ {
		g := NewGenerator(rand.New(rand.NewSource(7)))
		out := g.Generate(feats, ins, level)
		want := level + 2
		if want > 7 {
			want = 7
		}
		for _, sol := range out.Solutions {
			steps := strings.Split(sol.Approach, "\n")
			if len(steps) != want {
				t.Errorf("level %d: approach has %d steps, want %d", level, len(steps), want)
			}
		}
	}
}

func TestLevelFiveIncludesBreakthrough(t *testing.T) {
	feats, ins := pipelineInputs(t)
	g := NewGenerator(rand.New(rand.NewSource(11)))
	out := g.Generate(feats, ins, 5)

	highPotential := map[string]bool{}
	for _, tech := range knowledge.HighPotentialTechnologies() {
		highPotential[tech.Technology] = true
	}

	found := false
	for _, tech := range out.Technologies {
		if tech.Category == "Breakthrough Technology" {
			found = true
			if tech.Relevance != 10 {
				t.Errorf("breakthrough relevance = %v, want 10", tech.Relevance)
			}
		}
		if highPotential[tech.Technology] {
			found = true
		}
	}
	if !found {
		t.Error("level 5 should include a high-disruption technology")
	}
}

func TestTechnologyRelevanceRange(t *testing.T) {
	feats, ins := pipelineInputs(t)
	g := NewGenerator(rand.New(rand.NewSource(3)))
	out := g.Generate(feats, ins, 4)
	if len(out.Technologies) == 0 {
		t.Fatal("expected technology suggestions")
	}
	for _, tech := range out.Technologies {
		if tech.Relevance < 1 || tech.Relevance > 10 {
			t.Errorf("relevance %v for %q, want in [1,10]", tech.Relevance, tech.Technology)
		}
		if tech.Category == "" {
			t.Errorf("technology %q missing category", tech.Technology)
		}
	}
}

func TestCrossDomainIdeasUniqueAndBounded(t *testing.T) {
	feats, ins := pipelineInputs(t)
	for level := 1; level <= 5; level++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(level * 13))))
		out := g.Generate(feats, ins, level)
		if len(out.CrossDomain) == 0 {
			t.Errorf("level %d: expected cross-domain ideas", level)
		}
		seen := map[string]bool{}
		for _, idea := range out.CrossDomain {
			if seen[idea] {
				t.Errorf("level %d: duplicate idea %q", level, idea)
			}
			seen[idea] = true
		}
	}
}

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	feats, ins := pipelineInputs(t)
	a := NewGenerator(rand.New(rand.NewSource(99))).Generate(feats, ins, 3)
	b := NewGenerator(rand.New(rand.NewSource(99))).Generate(feats, ins, 3)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should reproduce identical innovations")
	}
}
