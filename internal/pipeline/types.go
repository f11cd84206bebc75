package pipeline

import (
	"time"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/innovation"
	"github.com/hackseek-app/hackseek/internal/insights"
	"github.com/hackseek-app/hackseek/internal/prioritize"
	"github.com/hackseek-app/hackseek/internal/tips"
)

const Disclaimer = "This analysis is generated from rule-based heuristics and curated knowledge tables. " +
	"Treat it as structured brainstorming material, not expert advice."

const (
	CapabilityAnalysis = "problem-analysis-pipeline"
	MaxProblemChars    = 20000

	MinDial = 1
	MaxDial = 5
)

type Mode string

const (
	ModeComplete Mode = "COMPLETE"
	ModeDegraded Mode = "DEGRADED"
)

type Request struct {
	ProblemStatement string `json:"problem_statement"`
	Depth            int    `json:"depth"`
	Level            int    `json:"level"`
	Enhance          bool   `json:"enhance,omitempty"`
}

type Metadata struct {
	StagesExecuted []string  `json:"stages_executed"`
	StageFailed    string    `json:"stage_failed,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
	InputTruncated bool      `json:"input_truncated"`
	Mode           Mode      `json:"mode"`
	EnhanceError   string    `json:"enhance_error,omitempty"`
}

type Result struct {
	Request          Request                `json:"request"`
	Features         analysis.TextFeatures  `json:"features"`
	Insights         insights.Insights      `json:"insights"`
	Innovations      innovation.Innovations `json:"innovations"`
	Actions          []prioritize.Action    `json:"actions"`
	Tips             tips.ContextAwareTips  `json:"tips"`
	EnhancedInsights string                 `json:"enhanced_insights,omitempty"`
	Metadata         Metadata               `json:"metadata"`
}

type ResponseEnvelope struct {
	Result         Result `json:"result"`
	ReportMarkdown string `json:"report_markdown"`
	Disclaimer     string `json:"disclaimer"`
}
