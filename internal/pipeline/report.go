package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hackseek-app/hackseek/internal/knowledge"
)

func BuildResponse(result Result) ResponseEnvelope {
	return ResponseEnvelope{
		Result:         result,
		ReportMarkdown: BuildMarkdown(result),
		Disclaimer:     Disclaimer,
	}
}

// BuildMarkdown renders the full analysis result as a markdown report.
func BuildMarkdown(result Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Problem Analysis Report\n\n")
	fmt.Fprintf(&b, "- Problem: %s\n", sanitize(shorten(result.Request.ProblemStatement, 200)))
	fmt.Fprintf(&b, "- Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Analysis depth: %d, innovation level: %d\n", result.Request.Depth, result.Request.Level)
	fmt.Fprintf(&b, "- Mode: %s\n\n", result.Metadata.Mode)
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)

	if result.Metadata.Mode == ModeDegraded {
		fmt.Fprintf(&b, "> DEGRADED: the `%s` stage failed (%s). The rule-based analysis below is complete; only the enhancement is missing.\n\n",
			sanitize(result.Metadata.StageFailed), sanitize(result.Metadata.EnhanceError))
	}

	writeDomainRelevance(&b, result.Insights.DomainRelevance)
	writeInsights(&b, result)
	writeSolutions(&b, result)
	writeTechnologies(&b, result)
	writeActions(&b, result)
	writeTips(&b, result)

	if result.EnhancedInsights != "" {
		fmt.Fprintf(&b, "## Enhanced Insights\n\n%s\n\n", result.EnhancedInsights)
	}
	return b.String()
}

func writeDomainRelevance(b *strings.Builder, relevance map[string]float64) {
	fmt.Fprintf(b, "## Domain Relevance\n\n")
	fmt.Fprintf(b, "| Domain | Relevance |\n|--------|-----------|\n")
	type pair struct {
		domain string
		score  float64
	}
	var pairs []pair
	for _, domain := range knowledge.InsightDomains {
		if score, ok := relevance[domain]; ok && score > 0 {
			pairs = append(pairs, pair{domain, score})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })
	if len(pairs) > 5 {
		pairs = pairs[:5]
	}
	for _, p := range pairs {
		fmt.Fprintf(b, "| %s | %.1f |\n", sanitizeCell(p.domain), p.score)
	}
	fmt.Fprintf(b, "\n")
}

func writeInsights(b *strings.Builder, result Result) {
	fmt.Fprintf(b, "## Insights\n\n")
	fmt.Fprintf(b, "### Trends\n\n")
	writeList(b, result.Insights.Trends)
	fmt.Fprintf(b, "### Patterns\n\n")
	writeList(b, result.Insights.Patterns)
	fmt.Fprintf(b, "### Gaps\n\n")
	writeList(b, result.Insights.Gaps)
}

func writeSolutions(b *strings.Builder, result Result) {
	fmt.Fprintf(b, "## Proposed Solutions\n\n")
	for i, sol := range result.Innovations.Solutions {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, sanitize(sol.Title))
		fmt.Fprintf(b, "%s\n\n", sanitize(sol.Description))
		fmt.Fprintf(b, "%s\n\n", sol.Approach)
	}
	if len(result.Innovations.CrossDomain) > 0 {
		fmt.Fprintf(b, "### Cross-Domain Ideas\n\n")
		writeList(b, result.Innovations.CrossDomain)
	}
}

func writeTechnologies(b *strings.Builder, result Result) {
	if len(result.Innovations.Technologies) == 0 {
		return
	}
	fmt.Fprintf(b, "## Suggested Technologies\n\n")
	fmt.Fprintf(b, "| Technology | Category | Relevance |\n|------------|----------|----------|\n")
	for _, t := range result.Innovations.Technologies {
		fmt.Fprintf(b, "| %s | %s | %.1f |\n", sanitizeCell(t.Technology), sanitizeCell(t.Category), t.Relevance)
	}
	fmt.Fprintf(b, "\n")
}

func writeActions(b *strings.Builder, result Result) {
	if len(result.Actions) == 0 {
		return
	}
	fmt.Fprintf(b, "## Prioritized Actions\n\n")
	fmt.Fprintf(b, "| Action | Priority | Impact | Difficulty | Timeframe | Resources |\n")
	fmt.Fprintf(b, "|--------|----------|--------|------------|-----------|-----------|\n")
	for _, a := range result.Actions {
		fmt.Fprintf(b, "| %s | %.1f | %.1f | %.1f | %s | %s |\n",
			sanitizeCell(a.Action), a.PriorityScore, a.Impact, a.Difficulty,
			sanitizeCell(a.Timeframe), sanitizeCell(a.Resources))
	}
	fmt.Fprintf(b, "\n")
}

func writeTips(b *strings.Builder, result Result) {
	t := result.Tips
	fmt.Fprintf(b, "## Hackathon Tips\n\n")
	fmt.Fprintf(b, "Primary domain: **%s** | approach: **%s** | audience: **%s**\n\n",
		sanitize(t.DomainAnalysis.PrimaryDomain), sanitize(t.DomainAnalysis.PrimaryApproach), sanitize(t.DomainAnalysis.PrimaryUser))

	fmt.Fprintf(b, "### For This Problem\n\n")
	for _, tip := range []knowledge.SpecialTip{
		t.SpecializedTips.DomainTip, t.SpecializedTips.ApproachTip,
		t.SpecializedTips.ComplexityTip, t.SpecializedTips.UserTip,
	} {
		fmt.Fprintf(b, "- **%s**: %s\n", sanitize(tip.Title), sanitize(tip.Description))
	}
	fmt.Fprintf(b, "\n### Planning\n\n")
	writeTipList(b, t.SelectedTips.PlanningTips)
	fmt.Fprintf(b, "### Technical\n\n")
	writeTipList(b, t.SelectedTips.TechTips)
	fmt.Fprintf(b, "### Presentation\n\n")
	writeTipList(b, t.SelectedTips.PresentationTips)
	fmt.Fprintf(b, "### Judging\n\n")
	writeTipList(b, t.SelectedTips.JudgeInsights)
	fmt.Fprintf(b, "### Pitfalls to Avoid\n\n")
	for _, p := range t.SelectedTips.Pitfalls {
		fmt.Fprintf(b, "- **%s**: %s Avoid it: %s\n", sanitize(p.Title), sanitize(p.Description), sanitize(p.AvoidanceStrategy))
	}
	fmt.Fprintf(b, "\n")
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", sanitize(item))
	}
	fmt.Fprintf(b, "\n")
}

func writeTipList(b *strings.Builder, tips []knowledge.Tip) {
	for _, tip := range tips {
		fmt.Fprintf(b, "- **%s**: %s\n", sanitize(tip.Title), sanitize(tip.Description))
	}
	fmt.Fprintf(b, "\n")
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

func sanitizeCell(s string) string {
	s = sanitize(s)
	return strings.ReplaceAll(s, "|", "\\|")
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
