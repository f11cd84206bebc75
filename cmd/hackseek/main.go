package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/pipeline"
	"github.com/hackseek-app/hackseek/internal/scoring"
	"github.com/hackseek-app/hackseek/internal/tips"
)

var version = "v0.1.0" // Overwritten at build time

var (
	depth      int
	level      int
	seed       int64
	jsonOutput bool
	markdown   bool
	sample     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hackseek",
		Short: "Rule-based problem analysis for hackathon projects",
		Long: `hackseek turns a free-text problem statement into domain insights,
solution sketches, technology suggestions, prioritized actions, and
hackathon tips, all generated locally from curated knowledge tables.`,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newTipsCmd(),
		newSamplesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze PROBLEM",
		Short: "Run the full analysis pipeline on a problem statement",
		Long: `Run feature extraction, domain scoring, insight and innovation
generation, and action prioritization on a problem statement.

Examples:
  # Standard analysis
  hackseek analyze "Food banks cannot predict daily demand"

  # Deeper insights and bolder solutions
  hackseek analyze "Commuters waste hours in traffic" --depth 5 --level 5

  # Reproducible output for scripting
  hackseek analyze "..." --seed 42 --json

  # Try a generated demo problem (see 'hackseek samples' for categories)
  hackseek analyze --sample "Food Supply Chain Waste"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "Analysis depth (1-5)")
	cmd.Flags().IntVarP(&level, "level", "l", 3, "Innovation level (1-5)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible output (0 = random)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result envelope as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Emit the markdown report")
	cmd.Flags().StringVar(&sample, "sample", "", "Analyze a generated demo problem from the named category")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rng := newRNG()
	problem := ""
	switch {
	case sample != "" && len(args) > 0:
		return fmt.Errorf("pass either a problem statement or --sample, not both")
	case sample != "":
		problem = knowledge.SampleProblem(rng, sample)
		// Stderr so --json output stays parseable.
		fmt.Fprintf(os.Stderr, "Sample problem (%s):\n%s\n", sample, problem)
	case len(args) == 1:
		problem = args[0]
	default:
		return fmt.Errorf("a problem statement or --sample is required")
	}

	pipe := pipeline.New(rng)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Start()
	result, err := pipe.RunWithProgress(context.Background(),
		pipeline.Request{ProblemStatement: problem, Depth: depth, Level: level},
		func(_, message string) { s.Suffix = " " + message })
	s.Stop()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if jsonOutput {
		return printJSON(pipeline.BuildResponse(result))
	}
	if markdown {
		fmt.Println(pipeline.BuildMarkdown(result))
		return nil
	}
	printResult(result)
	return nil
}

func newTipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tips PROBLEM",
		Short: "Show hackathon tips matched to a problem statement",
		Args:  cobra.ExactArgs(1),
		RunE:  runTips,
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible output (0 = random)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the tips as JSON")
	return cmd
}

func runTips(cmd *cobra.Command, args []string) error {
	selector := tips.NewSelector(scoring.New(newRNG()))
	feats := analysis.NewExtractor().Extract(args[0])
	selected := selector.Select(feats)

	if jsonOutput {
		return printJSON(selected)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("Hackathon Tips")
	fmt.Printf("Domain: %s | Approach: %s | Audience: %s\n\n",
		selected.DomainAnalysis.PrimaryDomain,
		selected.DomainAnalysis.PrimaryApproach,
		selected.DomainAnalysis.PrimaryUser)

	printTipSection("For this problem",
		selected.SpecializedTips.DomainTip.Title+": "+selected.SpecializedTips.DomainTip.Description,
		selected.SpecializedTips.ApproachTip.Title+": "+selected.SpecializedTips.ApproachTip.Description,
		selected.SpecializedTips.ComplexityTip.Title+": "+selected.SpecializedTips.ComplexityTip.Description,
		selected.SpecializedTips.UserTip.Title+": "+selected.SpecializedTips.UserTip.Description)

	var planning []string
	for _, tip := range selected.SelectedTips.PlanningTips {
		planning = append(planning, tip.Title+": "+tip.Description)
	}
	printTipSection("Planning", planning...)

	var pitfalls []string
	for _, p := range selected.SelectedTips.Pitfalls {
		pitfalls = append(pitfalls, p.Title+": "+p.AvoidanceStrategy)
	}
	printTipSection("Pitfalls", pitfalls...)
	return nil
}

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List demo problem categories with a generated example each",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rng := newRNG()
			cyan := color.New(color.FgCyan, color.Bold)
			for _, category := range knowledge.SampleCategories {
				cyan.Println(category)
				fmt.Printf("  %s\n\n", knowledge.SampleProblem(rng, category))
			}
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible output (0 = random)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hackseek version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hackseek %s\n", version)
		},
	}
}

func newRNG() *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(seed))
}

func printResult(result pipeline.Result) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("Problem Analysis")
	fmt.Printf("Depth %d, level %d, mode %s\n", result.Request.Depth, result.Request.Level, result.Metadata.Mode)

	green.Println("\nTrends")
	for _, trend := range result.Insights.Trends {
		fmt.Printf("  - %s\n", trend)
	}
	green.Println("\nGaps")
	for _, gap := range result.Insights.Gaps {
		fmt.Printf("  - %s\n", gap)
	}

	green.Println("\nSolutions")
	for i, sol := range result.Innovations.Solutions {
		fmt.Printf("  %d. %s\n     %s\n", i+1, sol.Title, sol.Description)
	}

	green.Println("\nTop Actions")
	actions := result.Actions
	if len(actions) > 5 {
		actions = actions[:5]
	}
	for _, a := range actions {
		yellow.Printf("  [%.1f] ", a.PriorityScore)
		fmt.Printf("%s (%s)\n", a.Action, a.Timeframe)
	}
	fmt.Println()
}

func printTipSection(title string, lines ...string) {
	color.New(color.FgGreen).Println(title)
	for _, line := range lines {
		fmt.Printf("  - %s\n", line)
	}
	fmt.Println()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
