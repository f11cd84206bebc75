package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/hackseek-app/hackseek/internal/insights"
)

const healthcareProblem = "Healthcare providers cannot easily share patient records between hospitals due to privacy regulations."

type mockEnhancer struct {
	text  string
	err   error
	calls int
}

func (m *mockEnhancer) EnhanceInsights(_ context.Context, _ string, _ insights.Insights) (string, error) {
	m.calls++
	return m.text, m.err
}

func TestPipelineEnhanceSuccess(t *testing.T) {
	enh := &mockEnhancer{text: "Deeper look at record sharing.\n"}
	p := New(rand.New(rand.NewSource(8))).WithEnhancer(enh)
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2, Enhance: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if enh.calls != 1 {
		t.Fatalf("enhancer calls = %d, want 1", enh.calls)
	}
	if res.EnhancedInsights != "Deeper look at record sharing." {
		t.Fatalf("enhanced insights = %q", res.EnhancedInsights)
	}
	if res.Metadata.Mode != ModeComplete {
		t.Fatalf("mode = %s", res.Metadata.Mode)
	}
	last := res.Metadata.StagesExecuted[len(res.Metadata.StagesExecuted)-1]
	if last != "enhance" {
		t.Fatalf("last stage = %s, want enhance", last)
	}
}

func TestPipelineEnhanceFailureDegrades(t *testing.T) {
	enh := &mockEnhancer{err: errors.New("upstream unavailable")}
	p := New(rand.New(rand.NewSource(9))).WithEnhancer(enh)
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2, Enhance: true})
	if err != nil {
		t.Fatalf("enhance failure must not fail the run: %v", err)
	}
	if res.Metadata.Mode != ModeDegraded {
		t.Fatalf("mode = %s, want DEGRADED", res.Metadata.Mode)
	}
	if res.Metadata.StageFailed != "enhance" {
		t.Fatalf("stage failed = %s", res.Metadata.StageFailed)
	}
	if res.Metadata.EnhanceError == "" || res.EnhancedInsights != "" {
		t.Fatalf("error tagging wrong: %q / %q", res.Metadata.EnhanceError, res.EnhancedInsights)
	}
	if len(res.Actions) == 0 {
		t.Fatal("rule-based output must survive enhancement failure")
	}
}

func TestPipelineEnhanceSkippedByDefault(t *testing.T) {
	enh := &mockEnhancer{text: "unused"}
	p := New(rand.New(rand.NewSource(10))).WithEnhancer(enh)
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if enh.calls != 0 {
		t.Fatalf("enhancer called %d times without enhance flag", enh.calls)
	}
	if res.EnhancedInsights != "" {
		t.Fatalf("unexpected enhanced insights %q", res.EnhancedInsights)
	}
}

func TestPipelineHealthcareEndToEnd(t *testing.T) {
	p := New(rand.New(rand.NewSource(1)))
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 3, Level: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Metadata.Mode != ModeComplete {
		t.Fatalf("mode = %s, want COMPLETE", res.Metadata.Mode)
	}
	if len(res.Features.Constraints) == 0 {
		t.Fatal("expected a constraint from the 'cannot' sentence")
	}
	top, best := "", -1.0
	for domain, score := range res.Insights.DomainRelevance {
		if score > best {
			top, best = domain, score
		}
	}
	if top != "Healthcare" {
		t.Fatalf("top insight domain = %q (%.1f), want Healthcare", top, best)
	}
	if len(res.Actions) == 0 {
		t.Fatal("expected prioritized actions")
	}
	for i, a := range res.Actions {
		if a.PriorityScore <= 0 {
			t.Fatalf("action %d has non-positive priority %.2f", i, a.PriorityScore)
		}
		if i > 0 && res.Actions[i-1].PriorityScore < a.PriorityScore {
			t.Fatalf("actions not sorted at %d", i)
		}
	}
	want := []string{"extract", "score", "insights", "innovations", "actions", "tips"}
	if len(res.Metadata.StagesExecuted) != len(want) {
		t.Fatalf("stages executed = %v", res.Metadata.StagesExecuted)
	}
	for i, name := range want {
		if res.Metadata.StagesExecuted[i] != name {
			t.Fatalf("stage %d = %s, want %s", i, res.Metadata.StagesExecuted[i], name)
		}
	}
}

func TestPipelineEmptyInputDoesNotFail(t *testing.T) {
	p := New(rand.New(rand.NewSource(7)))
	res, err := p.Run(context.Background(), Request{ProblemStatement: "", Depth: 1, Level: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Features.Objectives) != 0 || len(res.Features.Constraints) != 0 || len(res.Features.Entities) != 0 {
		t.Fatalf("expected empty features, got %+v", res.Features)
	}
	if res.Features.Complexity != 0 || res.Features.Sentiment != 0 {
		t.Fatalf("expected zero complexity and sentiment, got %.2f / %.2f", res.Features.Complexity, res.Features.Sentiment)
	}
	if len(res.Actions) == 0 {
		t.Fatal("generic action fallback should still produce actions")
	}
}

func TestPipelineClampsDials(t *testing.T) {
	p := New(rand.New(rand.NewSource(2)))
	res, err := p.Run(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 99, Level: -1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Request.Depth != 5 || res.Request.Level != 1 {
		t.Fatalf("dials = %d/%d, want 5/1", res.Request.Depth, res.Request.Level)
	}
	if got := len(res.Innovations.Solutions); got != 2 {
		t.Fatalf("solutions = %d, want min(level+1,5) = 2", got)
	}
}

func TestPipelineCancelledContext(t *testing.T) {
	p := New(rand.New(rand.NewSource(3)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *StageError", err)
	}
	if se.Stage != "extract" {
		t.Fatalf("failed stage = %s, want extract", se.Stage)
	}
	if StageNameFromError(err) != "extract" {
		t.Fatalf("StageNameFromError = %s", StageNameFromError(err))
	}
}

func TestPipelineProgressCallback(t *testing.T) {
	p := New(rand.New(rand.NewSource(4)))
	var seen []string
	_, err := p.RunWithProgress(context.Background(), Request{ProblemStatement: healthcareProblem, Depth: 2, Level: 2},
		func(stage, _ string) { seen = append(seen, stage) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Join(seen, ",") != "extract,score,insights,innovations,actions,tips" {
		t.Fatalf("progress stages = %v", seen)
	}
}

func TestPipelineTruncatesLongInput(t *testing.T) {
	p := New(rand.New(rand.NewSource(5)))
	long := strings.Repeat("Improve supply chain visibility for manufacturers. ", 1000)
	res, err := p.Run(context.Background(), Request{ProblemStatement: long, Depth: 2, Level: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Metadata.InputTruncated {
		t.Fatal("expected input truncation flag")
	}
	if len(res.Request.ProblemStatement) != MaxProblemChars {
		t.Fatalf("kept %d chars, want %d", len(res.Request.ProblemStatement), MaxProblemChars)
	}
}

// One Pipeline serves every request goroutine, so overlapping runs must be
// safe against each other. Run with -race.
func TestPipelineConcurrentRuns(t *testing.T) {
	p := New(rand.New(rand.NewSource(11)))
	problems := []string{
		healthcareProblem,
		"Small retailers struggle to compete with large e-commerce platforms.",
		"Students in rural areas lack reliable access to online learning tools.",
		"City traffic congestion wastes commuter time and increases emissions.",
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(problem string) {
			defer wg.Done()
			res, err := p.Run(context.Background(), Request{ProblemStatement: problem, Depth: 3, Level: 3})
			if err != nil {
				errs <- err
				return
			}
			if res.Metadata.Mode != ModeComplete {
				errs <- fmt.Errorf("mode = %s, want COMPLETE", res.Metadata.Mode)
				return
			}
			if len(res.Actions) == 0 {
				errs <- errors.New("no actions produced")
			}
		}(problems[i%len(problems)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent run: %v", err)
	}
}
