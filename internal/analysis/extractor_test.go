package analysis

import (
	"strings"
	"testing"

	"github.com/jdkato/prose/v2"
)

func TestExtractEmptyInput(t *testing.T) {
	ex := NewExtractor()
	for _, text := range []string{"", "   ", "\n\t"} {
		feats := ex.Extract(text)
		if len(feats.Objectives) != 0 || len(feats.Constraints) != 0 {
			t.Errorf("Extract(%q): expected empty objectives and constraints", text)
		}
		if len(feats.Entities) != 0 {
			t.Errorf("Extract(%q): expected no entities", text)
		}
		if feats.Sentiment != 0 {
			t.Errorf("Extract(%q): sentiment = %v, want 0", text, feats.Sentiment)
		}
		if feats.Complexity != 0 {
			t.Errorf("Extract(%q): complexity = %v, want 0", text, feats.Complexity)
		}
	}
}

func TestExtractBounds(t *testing.T) {
	ex := NewExtractor()
	text := strings.Repeat("We must reduce waste. The system cannot scale. Users should see results. "+
		"Teams only have limited budgets. The maximum load is fixed. Reports must ship daily. ", 3)
	feats := ex.Extract(text)

	if len(feats.Objectives) > 5 {
		t.Errorf("objectives length = %d, want <= 5", len(feats.Objectives))
	}
	if len(feats.Constraints) > 5 {
		t.Errorf("constraints length = %d, want <= 5", len(feats.Constraints))
	}
	if feats.Sentiment < -1 || feats.Sentiment > 1 {
		t.Errorf("sentiment = %v, want in [-1,1]", feats.Sentiment)
	}
	if feats.Complexity < 0 || feats.Complexity > 1 {
		t.Errorf("complexity = %v, want in [0,1]", feats.Complexity)
	}
}

func TestExtractConstraintsFromNegation(t *testing.T) {
	ex := NewExtractor()
	feats := ex.Extract("Healthcare providers cannot easily share patient records between hospitals due to privacy regulations.")
	if len(feats.Constraints) == 0 {
		t.Fatal("expected the cannot sentence to surface as a constraint")
	}
	if !strings.Contains(feats.Constraints[0], "cannot") {
		t.Errorf("constraint %q does not contain the negation keyword", feats.Constraints[0])
	}
}

func TestExtractContrastFallback(t *testing.T) {
	ex := NewExtractor()
	feats := ex.Extract("The team built a prototype. However, adoption stalled in rural areas.")
	if len(feats.Constraints) == 0 {
		t.Fatal("expected the contrast-word sentence to surface as a constraint")
	}
	if !strings.Contains(strings.ToLower(feats.Constraints[0]), "however") {
		t.Errorf("constraint %q does not contain the contrast word", feats.Constraints[0])
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	ex := NewExtractor()
	feats := ex.Extract("Local farmers need better irrigation systems for dry seasons.")
	if len(feats.KeyPhrases) == 0 {
		t.Fatal("expected noun phrases from a plain declarative sentence")
	}
}

func TestLocateEntityOffsets(t *testing.T) {
	text := "Boston hospitals and Boston clinics share data."
	ents := locateEntities(text, []prose.Entity{
		{Text: "Boston", Label: "GPE"},
		{Text: "Boston", Label: "GPE"},
	})
	if len(ents) != 2 {
		t.Fatalf("got %d entities, want 2", len(ents))
	}
	if ents[0].Start != 0 || ents[0].End != 6 {
		t.Errorf("first mention at [%d,%d), want [0,6)", ents[0].Start, ents[0].End)
	}
	if ents[1].Start <= ents[0].Start {
		t.Errorf("second mention should resolve past the first, got start %d", ents[1].Start)
	}
	for _, e := range ents {
		if text[e.Start:e.End] != e.Text {
			t.Errorf("offsets [%d,%d) do not slice back to %q", e.Start, e.End, e.Text)
		}
	}
}

func TestSentimentDirection(t *testing.T) {
	ex := NewExtractor()
	pos := ex.Extract("This is an excellent and effective solution that will improve access.")
	neg := ex.Extract("The broken system causes terrible waste and constant failure.")
	if pos.Sentiment <= 0 {
		t.Errorf("positive text sentiment = %v, want > 0", pos.Sentiment)
	}
	if neg.Sentiment >= 0 {
		t.Errorf("negative text sentiment = %v, want < 0", neg.Sentiment)
	}
}
