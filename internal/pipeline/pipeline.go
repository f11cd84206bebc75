package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/innovation"
	"github.com/hackseek-app/hackseek/internal/insights"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/prioritize"
	"github.com/hackseek-app/hackseek/internal/scoring"
	"github.com/hackseek-app/hackseek/internal/tips"
)

type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func StageNameFromError(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return "pipeline"
}

type StageProgressFn func(stage, message string)

// InsightEnhancer produces free-form enhancement text for an analysis.
// Implementations call out to an external model and may fail; the pipeline
// treats that failure as a degraded result, never as a fatal error.
type InsightEnhancer interface {
	EnhanceInsights(ctx context.Context, problem string, ins insights.Insights) (string, error)
}

// Pipeline wires the rule-based stages together. All randomized draws in
// every stage come from the single injected source, so a fixed seed yields
// a fully reproducible result for a sequential caller.
type Pipeline struct {
	extractor   *analysis.Extractor
	scorer      *scoring.Scorer
	insightGen  *insights.Generator
	innovGen    *innovation.Generator
	prioritizer *prioritize.Prioritizer
	tipSelector *tips.Selector
	enhancer    InsightEnhancer
	tracer      trace.Tracer
}

// lockedSource serializes draws from the injected generator. One Pipeline is
// shared across request goroutines, and rand.Rand is not safe for concurrent
// use on its own.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Seed(seed)
}

func New(rng *rand.Rand) *Pipeline {
	shared := rand.New(&lockedSource{rng: rng})
	scorer := scoring.New(shared)
	return &Pipeline{
		extractor:   analysis.NewExtractor(),
		scorer:      scorer,
		insightGen:  insights.NewGenerator(shared),
		innovGen:    innovation.NewGenerator(shared),
		prioritizer: prioritize.New(shared),
		tipSelector: tips.NewSelector(scorer),
		tracer:      otel.Tracer("github.com/hackseek-app/hackseek/internal/pipeline"),
	}
}

// WithEnhancer enables the optional model-backed enhancement stage.
func (p *Pipeline) WithEnhancer(e InsightEnhancer) *Pipeline {
	p.enhancer = e
	return p
}

func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	return p.runWithProgress(ctx, req, nil)
}

func (p *Pipeline) RunWithProgress(ctx context.Context, req Request, progress StageProgressFn) (Result, error) {
	return p.runWithProgress(ctx, req, progress)
}

func (p *Pipeline) runWithProgress(ctx context.Context, req Request, progress StageProgressFn) (Result, error) {
	res := Result{
		Request:  req,
		Metadata: Metadata{StartedAt: time.Now(), Mode: ModeComplete},
	}
	req.Depth = clampDial(req.Depth)
	req.Level = clampDial(req.Level)
	if len(req.ProblemStatement) > MaxProblemChars {
		req.ProblemStatement = req.ProblemStatement[:MaxProblemChars]
		res.Metadata.InputTruncated = true
	}
	res.Request = req

	ctx, span := p.tracer.Start(ctx, "pipeline.run")
	defer span.End()

	type stage struct {
		name    string
		message string
		run     func(context.Context, *Result)
	}
	stages := []stage{
		{"extract", "Extracting text features...", p.runExtract},
		{"score", "Scoring domain relevance...", p.runScore},
		{"insights", "Generating insights...", p.runInsights},
		{"innovations", "Generating innovations...", p.runInnovations},
		{"actions", "Prioritizing actions...", p.runActions},
		{"tips", "Selecting context-aware tips...", p.runTips},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return res, &StageError{Stage: st.name, Err: err}
		}
		emit(progress, st.name, st.message)
		sctx, sspan := p.tracer.Start(ctx, "pipeline."+st.name)
		st.run(sctx, &res)
		sspan.End()
		res.Metadata.StagesExecuted = append(res.Metadata.StagesExecuted, st.name)
	}

	if req.Enhance && p.enhancer != nil {
		if err := ctx.Err(); err != nil {
			return res, &StageError{Stage: "enhance", Err: err}
		}
		emit(progress, "enhance", "Requesting enhanced insights...")
		sctx, sspan := p.tracer.Start(ctx, "pipeline.enhance")
		text, err := p.enhancer.EnhanceInsights(sctx, req.ProblemStatement, res.Insights)
		sspan.End()
		if err != nil {
			res.Metadata.Mode = ModeDegraded
			res.Metadata.StageFailed = "enhance"
			res.Metadata.EnhanceError = err.Error()
		} else {
			res.EnhancedInsights = strings.TrimSpace(text)
			res.Metadata.StagesExecuted = append(res.Metadata.StagesExecuted, "enhance")
		}
	}

	res.Metadata.CompletedAt = time.Now()
	return res, nil
}

func (p *Pipeline) runExtract(_ context.Context, res *Result) {
	res.Features = p.extractor.Extract(res.Request.ProblemStatement)
}

func (p *Pipeline) runScore(_ context.Context, res *Result) {
	res.Insights.DomainRelevance = p.scorer.Score(res.Features, knowledge.InsightDomainKeywords)
}

func (p *Pipeline) runInsights(_ context.Context, res *Result) {
	res.Insights = p.insightGen.Generate(res.Features, res.Insights.DomainRelevance, res.Request.Depth)
}

func (p *Pipeline) runInnovations(_ context.Context, res *Result) {
	res.Innovations = p.innovGen.Generate(res.Features, res.Insights, res.Request.Level)
}

func (p *Pipeline) runActions(_ context.Context, res *Result) {
	res.Actions = p.prioritizer.Prioritize(res.Innovations)
}

func (p *Pipeline) runTips(_ context.Context, res *Result) {
	res.Tips = p.tipSelector.Select(res.Features)
}

func emit(progress StageProgressFn, stage, message string) {
	if progress != nil {
		progress(stage, message)
	}
}

func clampDial(v int) int {
	if v < MinDial {
		return MinDial
	}
	if v > MaxDial {
		return MaxDial
	}
	return v
}
