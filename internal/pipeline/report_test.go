package pipeline

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func TestBuildMarkdownSections(t *testing.T) {
	p := New(rand.New(rand.NewSource(11)))
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 3, Level: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	md := BuildMarkdown(res)
	for _, section := range []string{
		"# Problem Analysis Report",
		"## Domain Relevance",
		"## Insights",
		"### Trends",
		"## Proposed Solutions",
		"## Suggested Technologies",
		"## Prioritized Actions",
		"## Hackathon Tips",
		"### Pitfalls to Avoid",
	} {
		if !strings.Contains(md, section) {
			t.Fatalf("markdown missing section %q", section)
		}
	}
	if strings.Contains(md, "## Enhanced Insights") {
		t.Fatal("enhanced section must be absent without enhancement")
	}
	if !strings.Contains(md, Disclaimer) {
		t.Fatal("markdown missing disclaimer")
	}
}

func TestBuildMarkdownDegradedBanner(t *testing.T) {
	res := Result{
		Request:  Request{ProblemStatement: "x", Depth: 1, Level: 1},
		Metadata: Metadata{Mode: ModeDegraded, StageFailed: "enhance", EnhanceError: "timeout"},
	}
	md := BuildMarkdown(res)
	if !strings.Contains(md, "> DEGRADED") || !strings.Contains(md, "enhance") {
		t.Fatalf("missing degraded banner:\n%s", md)
	}
}

func TestBuildResponseEnvelope(t *testing.T) {
	p := New(rand.New(rand.NewSource(12)))
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	env := BuildResponse(res)
	if env.Disclaimer != Disclaimer {
		t.Fatal("disclaimer not set")
	}
	if env.ReportMarkdown == "" {
		t.Fatal("report markdown not set")
	}
	if len(env.Result.Actions) != len(res.Actions) {
		t.Fatal("result not carried through")
	}
}

func TestSanitizeCellEscapesPipes(t *testing.T) {
	if got := sanitizeCell("a | b\nc"); got != "a \\| b c" {
		t.Fatalf("sanitizeCell = %q", got)
	}
}
