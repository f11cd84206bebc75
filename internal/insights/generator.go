// Package insights derives trends, patterns, and solution gaps from
// extracted problem features and domain relevance scores.
package insights

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/scoring"
)

// Insights is the output of the insight stage. Trends are an unordered,
// deduplicated set; patterns and gaps keep generation order.
type Insights struct {
	DomainRelevance map[string]float64 `json:"domain_relevance"`
	Trends          []string           `json:"trends"`
	Patterns        []string           `json:"patterns"`
	Gaps            []string           `json:"gaps"`
}

var patternTemplates = []string{
	"The problem exhibits a {cycle} cycle where {factor1} leads to {factor2}",
	"There's a clear correlation between {factor1} and {factor2} in this domain",
	"A common pattern in this area is the relationship between {factor1} and {factor2}",
	"Similar problems often show {factor1} affecting {factor2} in a {relationship} way",
	"Historical data suggests that {factor1} typically precedes changes in {factor2}",
	"The {factor1} follows a predictable pattern when {factor2} changes",
	"Analysis shows a {relationship} relationship between {factor1} and {factor2}",
}

var gapTemplates = []string{
	"Current solutions often lack {aspect}, which is essential for addressing {issue}",
	"There's a significant gap in {domain} regarding {aspect} implementation",
	"Most approaches fail to consider the importance of {aspect} in solving {issue}",
	"The connection between {aspect1} and {aspect2} is often overlooked in existing solutions",
	"Existing frameworks don't adequately address the {issue} from a {aspect} perspective",
	"There's an opportunity to bridge the gap between {aspect1} and {aspect2} in this domain",
	"Current {domain} solutions lack integration with {aspect}, limiting their effectiveness",
}

var baseAspects = []string{
	"user experience", "data integration", "sustainability", "scalability",
	"accessibility", "personalization", "real-time feedback", "automation",
	"cross-functional collaboration", "long-term planning", "resource optimization",
}

var relationships = []string{"direct", "inverse", "complex", "causal", "interdependent"}
var cycles = []string{"reinforcing", "balancing", "seasonal", "cyclical", "emerging"}

// Generator produces Insights. All sampling draws from the injected source.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds insights for the given features and relevance scores.
// depth is clamped to [1,5] and controls output cardinality.
func (g *Generator) Generate(feats analysis.TextFeatures, relevance map[string]float64, depth int) Insights {
	depth = clamp(depth)
	topDomains := scoring.Top(relevance, knowledge.InsightDomainKeywords, 3)
	return Insights{
		DomainRelevance: relevance,
		Trends:          g.trends(feats, topDomains, depth),
		Patterns:        g.patterns(feats, depth),
		Gaps:            g.gaps(feats, topDomains, depth),
	}
}

// trendBank merges the baseline per-domain trends with tech-domain trends
// and emerging-technology application sentences, in a stable order.
func trendBank() map[string][]string {
	bank := make(map[string][]string, len(knowledge.DomainTrends))
	for domain, list := range knowledge.DomainTrends {
		bank[domain] = append([]string(nil), list...)
	}
	for _, domain := range knowledge.InsightDomains {
		key, ok := knowledge.DomainMapping[domain]
		if !ok {
			continue
		}
		if td, ok := knowledge.TechDomains[key]; ok {
			bank[domain] = append(bank[domain], td.Trends...)
		}
	}
	for _, tech := range knowledge.EmergingTechnologies {
		if len(tech.Applications) > 0 {
			bank["Technology"] = append(bank["Technology"],
				fmt.Sprintf("Emergence of %s with applications in %s", tech.Technology, tech.Applications[0]))
		}
		for _, app := range tech.Applications {
			appLower := strings.ToLower(app)
			for _, domain := range knowledge.InsightDomains {
				if strings.Contains(appLower, strings.ToLower(domain)) {
					bank[domain] = append(bank[domain],
						fmt.Sprintf("Application of %s for %s", tech.Technology, app))
				}
			}
		}
	}
	return bank
}

func (g *Generator) trends(feats analysis.TextFeatures, topDomains []string, depth int) []string {
	bank := trendBank()

	var trends []string
	perDomain := depth + 2
	if perDomain > 7 {
		perDomain = 7
	}
	for _, domain := range topDomains {
		pool := dedupe(bank[domain])
		trends = append(trends, g.sample(pool, perDomain)...)
	}

	// Pull in trends that echo the leading objectives.
	objectives := feats.Objectives
	if len(objectives) > 2 {
		objectives = objectives[:2]
	}
	for _, objective := range objectives {
		words := strings.Fields(strings.ToLower(objective))
		for _, domain := range knowledge.InsightDomains {
			for _, trend := range bank[domain] {
				trendLower := strings.ToLower(trend)
				for _, word := range words {
					if len(word) > 3 && strings.Contains(trendLower, word) {
						trends = append(trends, trend)
						break
					}
				}
			}
		}
	}

	if depth >= 3 {
		m := knowledge.Methodologies[g.rng.Intn(len(knowledge.Methodologies))]
		trends = append(trends, fmt.Sprintf("Growing application of %s methodology for similar challenges", m.Name))
	}

	trends = dedupe(trends)
	if max := depth + 5; len(trends) > max {
		trends = trends[:max]
	}
	return trends
}

func (g *Generator) patterns(feats analysis.TextFeatures, depth int) []string {
	var factors []string
	for _, ent := range feats.Entities {
		factors = append(factors, ent.Text)
	}
	phrases := feats.KeyPhrases
	if len(phrases) > 5 {
		phrases = phrases[:5]
	}
	factors = append(factors, phrases...)
	if len(factors) < 5 {
		for _, objective := range feats.Objectives {
			words := strings.Fields(objective)
			if len(words) >= 3 {
				factors = append(factors, strings.Join(words[:3], " "))
			}
		}
	}
	for len(factors) < 5 {
		factors = append(factors, fmt.Sprintf("factor-%d", len(factors)+1))
	}
	factors = dedupe(factors)

	var patterns []string
	numCrossDomain := 0
	if depth > 1 {
		numCrossDomain = depth - 1
		if numCrossDomain > 3 {
			numCrossDomain = 3
		}
	}
	for _, i := range g.rng.Perm(len(knowledge.CrossDomainPatterns))[:numCrossDomain] {
		p := knowledge.CrossDomainPatterns[i]
		example := p.Examples[g.rng.Intn(len(p.Examples))]
		patterns = append(patterns, fmt.Sprintf("The '%s' pattern (%s) may be applicable, as seen in examples like %s",
			p.Pattern, p.Description, example))
	}

	numTraditional := depth + 1
	if numTraditional > 5 {
		numTraditional = 5
	}
	numTraditional -= len(patterns)
	for i := 0; i < numTraditional; i++ {
		template := patternTemplates[g.rng.Intn(len(patternTemplates))]
		factor1, factor2 := g.pickPair(factors)
		patterns = append(patterns, fill(template, map[string]string{
			"factor1":      factor1,
			"factor2":      factor2,
			"relationship": relationships[g.rng.Intn(len(relationships))],
			"cycle":        cycles[g.rng.Intn(len(cycles))],
		}))
	}

	if depth >= 4 {
		m := knowledge.Methodologies[g.rng.Intn(len(knowledge.Methodologies))]
		patterns = append(patterns, fmt.Sprintf("Consider applying the %s methodology (%s) with its phases: %s",
			m.Name, m.BestFor, strings.Join(m.Phases, ", ")))
	}
	return patterns
}

func (g *Generator) gaps(feats analysis.TextFeatures, topDomains []string, depth int) []string {
	aspects := append([]string(nil), baseAspects...)
	for _, domain := range topDomains {
		if key, ok := knowledge.DomainMapping[domain]; ok {
			if td, ok := knowledge.TechDomains[key]; ok {
				for _, challenge := range td.Challenges {
					aspects = append(aspects, strings.ToLower(challenge))
				}
			}
		}
	}

	issues := append([]string(nil), feats.Objectives...)
	issues = append(issues, feats.Constraints...)
	for len(issues) < 5 {
		issues = append(issues, fmt.Sprintf("key challenge %d", len(issues)+1))
	}

	var gaps []string
	for _, domain := range topDomains {
		key, ok := knowledge.DomainMapping[domain]
		if !ok {
			continue
		}
		td, ok := knowledge.TechDomains[key]
		if !ok || len(td.Challenges) == 0 {
			continue
		}
		n := depth
		if n > len(td.Challenges) {
			n = len(td.Challenges)
		}
		for _, challenge := range g.sample(td.Challenges, n) {
			issue := issues[g.rng.Intn(len(issues))]
			gap := fmt.Sprintf("In the %s domain, %s remains a critical gap that affects %s", domain, challenge, issue)
			gaps = appendUnique(gaps, gap)
		}
	}

	if depth >= 3 {
		tech := knowledge.EmergingTechnologies[g.rng.Intn(len(knowledge.EmergingTechnologies))]
		app := tech.Applications[g.rng.Intn(len(tech.Applications))]
		gaps = append(gaps, fmt.Sprintf("While %s (%s maturity) offers potential for %s, integration gaps exist in current solutions",
			tech.Technology, tech.Maturity, app))
	}

	numTemplate := depth + 1
	if numTemplate > 5 {
		numTemplate = 5
	}
	numTemplate -= len(gaps)
	for i := 0; i < numTemplate; i++ {
		aspect1 := aspects[g.rng.Intn(len(aspects))]
		aspect2 := aspect1
		for len(aspects) > 1 && aspect2 == aspect1 {
			aspect2 = aspects[g.rng.Intn(len(aspects))]
		}
		domain := "this"
		if len(topDomains) > 0 {
			domain = topDomains[g.rng.Intn(len(topDomains))]
		}
		gap := fill(gapTemplates[g.rng.Intn(len(gapTemplates))], map[string]string{
			"aspect":  aspects[g.rng.Intn(len(aspects))],
			"aspect1": aspect1,
			"aspect2": aspect2,
			"issue":   issues[g.rng.Intn(len(issues))],
			"domain":  domain,
		})
		gaps = appendUnique(gaps, gap)
	}

	if depth >= 4 {
		m := knowledge.Methodologies[g.rng.Intn(len(knowledge.Methodologies))]
		techniques := g.sample(m.Techniques, 2)
		if len(techniques) == 2 {
			gap := fmt.Sprintf("Current approaches rarely incorporate the %s methodology's techniques like %s and %s, leaving a methodological gap",
				m.Name, techniques[0], techniques[1])
			gaps = appendUnique(gaps, gap)
		}
	}

	if max := depth + 2; len(gaps) > max {
		gaps = gaps[:max]
	}
	return gaps
}

// sample returns up to n distinct elements in random order.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

func (g *Generator) pickPair(factors []string) (string, string) {
	if len(factors) >= 2 {
		idx := g.rng.Perm(len(factors))
		return factors[idx[0]], factors[idx[1]]
	}
	if len(factors) == 1 {
		return factors[0], "secondary factor"
	}
	return "primary factor", "secondary factor"
}

// fill replaces {slot} placeholders in a template.
func fill(template string, slots map[string]string) string {
	pairs := make([]string, 0, len(slots)*2)
	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", slots[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := list[:0:0]
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
