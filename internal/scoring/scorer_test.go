package scoring

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/knowledge"
)

func testTable() knowledge.KeywordTable {
	return knowledge.KeywordTable{
		Categories: []string{"alpha", "beta", "gamma", "delta"},
		Keywords: map[string][]string{
			"alpha": {"river", "stream"},
			"beta":  {"mountain", "peak"},
			"gamma": {"desert", "dune"},
			"delta": {"forest", "canopy"},
		},
	}
}

func featsFor(text string) analysis.TextFeatures {
	return analysis.NewExtractor().Extract(text)
}

func TestScoreRangeAndRanking(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	table := testTable()
	feats := featsFor("The river floods every spring, and the stream behind the mill overflows too.")

	scores := s.Score(feats, table)
	for cat, v := range scores {
		if v < 0 || v > 10 {
			t.Errorf("score[%s] = %v, want in [0,10]", cat, v)
		}
	}
	if scores["alpha"] != 10 {
		t.Errorf("top category should normalize to 10, got %v", scores["alpha"])
	}
	if got := Primary(scores, table); got != "alpha" {
		t.Errorf("Primary = %q, want alpha", got)
	}
}

func TestScoreZeroMatchFallback(t *testing.T) {
	s := New(rand.New(rand.NewSource(42)))
	table := testTable()
	feats := featsFor("Completely unrelated words about baking bread at home.")

	scores := s.Score(feats, table)
	nonzero := 0
	for cat, v := range scores {
		if v == 0 {
			continue
		}
		nonzero++
		if v < 5 || v >= 10 {
			t.Errorf("fallback score[%s] = %v, want in [5,10)", cat, v)
		}
	}
	if nonzero != 3 {
		t.Errorf("fallback assigned %d nonzero scores, want exactly 3", nonzero)
	}
}

func TestRawIsDeterministic(t *testing.T) {
	s := New(rand.New(rand.NewSource(7)))
	table := testTable()
	feats := featsFor("Hiking the mountain near the forest gives a view of the peak.")

	first := s.Raw(feats, table)
	second := s.Raw(feats, table)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Raw not deterministic: %v vs %v", first, second)
	}
	if first["beta"] <= first["gamma"] {
		t.Errorf("expected beta to outscore gamma, got %v vs %v", first["beta"], first["gamma"])
	}
}

func TestPrimaryFallsBackToFirstCategory(t *testing.T) {
	table := testTable()
	scores := map[string]float64{"alpha": 0, "beta": 0, "gamma": 0, "delta": 0}
	if got := Primary(scores, table); got != "alpha" {
		t.Errorf("Primary on all-zero scores = %q, want first category", got)
	}
}

func TestTopDropsZeroScores(t *testing.T) {
	table := testTable()
	scores := map[string]float64{"alpha": 0, "beta": 4, "gamma": 9, "delta": 0}
	got := Top(scores, table, 3)
	want := []string{"gamma", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
}
