// Package innovation turns insights into solution proposals, cross-domain
// ideas, and technology suggestions via templated generation.
package innovation

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/insights"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/scoring"
)

// Solution is a proposed solution with a multi-step approach text.
type Solution struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Approach    string `json:"approach"`
}

// TechnologySuggestion scores a categorized technology for the problem.
type TechnologySuggestion struct {
	Technology string  `json:"technology"`
	Category   string  `json:"category"`
	Relevance  float64 `json:"relevance"`
}

// Innovations is the output of the innovation stage.
type Innovations struct {
	Solutions    []Solution             `json:"solutions"`
	CrossDomain  []string               `json:"cross_domain"`
	Technologies []TechnologySuggestion `json:"technologies"`
}

// solutionTemplates is indexed by innovation level 1-5, ranging from
// conservative optimizations to disruptive paradigm shifts.
var solutionTemplates = map[int][]string{
	1: {
		"Optimize existing {process} to improve {outcome}",
		"Enhance {feature} to better meet {need}",
		"Streamline {process} to reduce {problem}",
		"Update {system} to incorporate {trend}",
	},
	2: {
		"Integrate {technology} into existing {system} to enhance {outcome}",
		"Develop a new approach to {process} that addresses {gap}",
		"Create a platform that connects {stakeholder1} with {stakeholder2}",
		"Implement a feedback system that improves {process} based on {data}",
	},
	3: {
		"Build a {technology}-powered system that transforms how {stakeholders} approach {problem}",
		"Create an ecosystem where {stakeholder1} and {stakeholder2} collaborate to solve {problem}",
		"Develop a hybrid solution combining {approach1} and {approach2} to address {problem}",
		"Design a modular system that adapts to changing {conditions} while maintaining {outcome}",
	},
	4: {
		"Leverage {technology1} and {technology2} to create a novel approach to {problem}",
		"Develop an AI-driven platform that continuously optimizes {process} based on {data}",
		"Create a decentralized system where {stakeholders} contribute to solving {problem}",
		"Build a predictive model that identifies potential {problems} before they occur",
	},
	5: {
		"Reimagine the entire {industry} paradigm through the integration of {technology1}, {technology2}, and {approach}",
		"Create a self-evolving ecosystem that autonomously adapts to changes in {conditions}",
		"Develop a platform that fundamentally changes how {stakeholders} interact with {system}",
		"Design a solution that eliminates the root cause of {problem} rather than treating symptoms",
	},
}

var descriptionTemplates = []string{
	"A {adjective} approach that addresses {problem} through innovative use of {technology}",
	"This solution tackles {problem} by {action}, resulting in improved {outcome}",
	"By combining {approach1} with {approach2}, this solution offers a unique way to address {problem}",
	"A {scale} solution designed to transform how {stakeholders} deal with {problem}",
	"An innovative framework that allows {stakeholders} to overcome {problem} through {approach}",
}

var crossDomainTemplates = []string{
	"Apply {concept1} from {domain1} to solve {problem} in {domain2}",
	"Combine {concept1} from {domain1} with {concept2} from {domain2} to create a novel solution",
	"Use {domain1}'s approach to {action} as inspiration for addressing {problem}",
	"Adapt the concept of {concept1} from {domain1} to revolutionize how {problem} is approached",
	"Implement a hybrid model combining {concept1} from {domain1} and {concept2} from {domain2}",
}

var (
	approaches = []string{
		"data-driven decision making", "user-centered design", "agile implementation",
		"systems thinking", "collaborative innovation", "iterative prototyping",
		"predictive analytics", "cross-functional integration",
	}
	outcomes = []string{
		"efficiency", "productivity", "user satisfaction", "cost reduction",
		"quality improvement", "sustainability", "scalability", "innovation",
	}
	features = []string{
		"user interface", "analytics dashboard", "automation capabilities",
		"integration options", "customization features", "reporting tools",
	}
	systems = []string{
		"platform", "framework", "application", "algorithm", "ecosystem",
		"infrastructure", "network", "database",
	}
	conditions = []string{
		"market demands", "user needs", "technological advancements",
		"regulatory requirements", "competitive pressures", "resource constraints",
	}
	adjectives = []string{
		"revolutionary", "holistic", "integrated", "scalable", "adaptable",
		"intuitive", "efficient", "sustainable", "intelligent", "resilient",
	}
	actionPhrases = []string{
		"redefining the workflow", "integrating disparate systems",
		"applying machine learning algorithms", "enabling real-time collaboration",
		"implementing predictive analytics", "utilizing crowd-sourced data",
	}
	scales = []string{
		"enterprise-wide", "community-based", "industry-specific",
		"globally applicable", "individually tailored", "team-oriented",
	}
	dataSources = []string{"user feedback", "performance metrics", "market data", "analytics"}
	industries  = []string{"industry", "sector", "market", "field", "domain"}

	genericProcesses = []string{
		"data processing", "user management", "resource allocation",
		"information sharing", "decision making", "task automation",
		"performance monitoring", "quality control", "feedback collection",
	}
	genericProblems = []string{
		"inefficient processes", "data silos", "communication gaps",
		"resource limitations", "quality inconsistencies", "user adoption",
		"information overload", "system complexity", "scalability issues",
		"security vulnerabilities", "compliance challenges",
	}
	genericStakeholders = []string{
		"user", "customer", "provider", "manager", "developer",
		"administrator", "stakeholder", "client", "partner", "community member",
	}
	ideaActions = []string{
		"optimize resources", "enhance user experience", "improve efficiency",
		"reduce complexity", "increase adoption", "foster innovation",
	}

	// approach-step adjective banks, indexed by level-1
	designAdjectives     = []string{"basic", "comprehensive", "innovative", "transformative", "revolutionary"}
	stageAdjectives      = []string{"sequential", "phased", "iterative", "adaptive", "continuous"}
	validationAdjectives = []string{"standard", "enhanced", "multi-dimensional", "predictive", "autonomous"}
	deployAdjectives     = []string{"controlled", "staged", "agile", "dynamic", "self-optimizing"}
	feedbackAdjectives   = []string{"basic", "comprehensive", "real-time", "AI-powered", "predictive"}
)

// Generator produces Innovations. All sampling draws from the injected
// source.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds innovations from features and insights. level is clamped
// to [1,5] and controls cardinality and template intensity.
func (g *Generator) Generate(feats analysis.TextFeatures, ins insights.Insights, level int) Innovations {
	level = clamp(level)
	return Innovations{
		Solutions:    g.solutions(feats, ins, level),
		CrossDomain:  g.crossDomainIdeas(feats, ins.DomainRelevance, level),
		Technologies: g.suggestTechnologies(ins.DomainRelevance, level),
	}
}

func (g *Generator) solutions(feats analysis.TextFeatures, ins insights.Insights, level int) []Solution {
	processes := g.extractProcesses(feats)
	problems := g.extractProblems(feats)
	technologies := g.extractTechnologies(ins)
	stakeholders := g.extractStakeholders(feats)

	templates := solutionTemplates[level]
	count := level + 1
	if count > 5 {
		count = 5
	}

	out := make([]Solution, 0, count)
	for i := 0; i < count; i++ {
		problem := g.choice(problems)
		technology := g.choice(technologies)
		technology1 := g.choice(technologies)
		technology2 := g.choiceExcept(technologies, technology1)
		approach := g.choice(approaches)
		approach1 := g.choice(approaches)
		approach2 := g.choiceExcept(approaches, approach1)
		outcome := g.choice(outcomes)
		stakeholder1 := g.choice(stakeholders)
		stakeholdersPlural := g.choice(stakeholders) + "s"

		gap := "identified gaps"
		if len(ins.Gaps) > 0 {
			gap = g.choice(ins.Gaps)
		}
		trend := "emerging trends"
		if len(ins.Trends) > 0 {
			trend = g.choice(ins.Trends)
		}

		slots := map[string]string{
			"process":      g.choice(processes),
			"outcome":      outcome,
			"feature":      g.choice(features),
			"problem":      problem,
			"problems":     problem + "s",
			"need":         outcome,
			"system":       g.choice(systems),
			"technology":   technology,
			"technology1":  technology1,
			"technology2":  technology2,
			"gap":          gap,
			"trend":        trend,
			"stakeholder":  stakeholder1,
			"stakeholders": stakeholdersPlural,
			"stakeholder1": stakeholder1,
			"stakeholder2": g.choiceExcept(stakeholders, stakeholder1),
			"approach":     approach,
			"approach1":    approach1,
			"approach2":    approach2,
			"conditions":   g.choice(conditions),
			"data":         g.choice(dataSources),
			"industry":     g.choice(industries),
			"adjective":    g.choice(adjectives),
			"action":       g.choice(actionPhrases),
			"scale":        g.choice(scales),
		}

		out = append(out, Solution{
			Title:       fill(g.choice(templates), slots),
			Description: fill(g.choice(descriptionTemplates), slots),
			Approach:    approachText(problem, technology, approach, level),
		})
	}
	return out
}

// approachText renders the numbered, bold-step implementation plan. The
// step count and the adjective intensity both scale with level.
func approachText(problem, technology, approach string, level int) string {
	steps := []string{
		fmt.Sprintf("1. **Analysis Phase**: Begin with a thorough assessment of the %s to understand root causes and key requirements.", problem),
		fmt.Sprintf("2. **Design Phase**: Develop a %s solution architecture integrating %s.", designAdjectives[level-1], technology),
		fmt.Sprintf("3. **Implementation Strategy**: Use %s to build the solution in %s stages.", approach, stageAdjectives[level-1]),
		"4. **Integration Plan**: Ensure seamless connection with existing systems and workflows.",
		fmt.Sprintf("5. **Validation Approach**: Implement %s testing and validation protocols.", validationAdjectives[level-1]),
		fmt.Sprintf("6. **Deployment Framework**: Roll out the solution using a %s deployment strategy.", deployAdjectives[level-1]),
		fmt.Sprintf("7. **Feedback Mechanism**: Establish %s feedback channels to continuously improve the solution.", feedbackAdjectives[level-1]),
	}
	n := level + 2
	if n > 7 {
		n = 7
	}
	return strings.Join(steps[:n], "\n")
}

func (g *Generator) extractProcesses(feats analysis.TextFeatures) []string {
	var processes []string
	for _, objective := range feats.Objectives {
		words := strings.Fields(objective)
		if len(words) >= 3 {
			processes = append(processes, strings.Join(words[:3], " "))
		}
	}
	for _, phrase := range feats.KeyPhrases {
		if len(strings.Fields(phrase)) >= 2 {
			processes = append(processes, phrase)
		}
	}
	for len(processes) < 5 {
		processes = append(processes, g.choice(genericProcesses))
	}
	return dedupe(processes)
}

func (g *Generator) extractProblems(feats analysis.TextFeatures) []string {
	var problems []string
	for _, constraint := range feats.Constraints {
		words := strings.Fields(constraint)
		if len(words) >= 3 {
			problems = append(problems, strings.Join(words[:3], " "))
		}
	}
	if len(problems) < 3 {
		for _, objective := range feats.Objectives {
			words := strings.Fields(objective)
			if len(words) >= 2 {
				problems = append(problems, "insufficient "+strings.Join(words[:2], " "))
			}
		}
	}
	for len(problems) < 5 {
		problems = append(problems, g.choice(genericProblems))
	}
	return dedupe(problems)
}

// extractTechnologies builds the technology-name pool from the top domains
// plus cross-domain and non-early emerging technologies.
func (g *Generator) extractTechnologies(ins insights.Insights) []string {
	topDomains := topDomainsWithScores(ins.DomainRelevance, 3)

	bank := make(map[string][]string, len(knowledge.DomainTechnologyNames))
	for domain, list := range knowledge.DomainTechnologyNames {
		bank[domain] = append([]string(nil), list...)
	}
	for _, domain := range knowledge.InsightDomains {
		key, ok := knowledge.DomainMapping[domain]
		if !ok {
			continue
		}
		if td, ok := knowledge.TechDomains[key]; ok {
			for _, concept := range td.Concepts {
				bank[domain] = append(bank[domain], strings.ToLower(concept))
			}
		}
	}

	crossDomain := append([]string(nil), knowledge.CrossDomainTechnologyNames...)
	for _, tech := range knowledge.EmergingTechnologies {
		if tech.Maturity != knowledge.MaturityEarly {
			crossDomain = append(crossDomain, strings.ToLower(tech.Technology))
		}
	}

	var technologies []string
	for _, d := range topDomains {
		pool := bank[d.name]
		if len(pool) == 0 {
			continue
		}
		n := int(d.score/2) + 2
		if n > len(pool) {
			n = len(pool)
		}
		technologies = append(technologies, g.sample(pool, n)...)
	}

	n := 5
	if n > len(crossDomain) {
		n = len(crossDomain)
	}
	technologies = append(technologies, g.sample(crossDomain, n)...)

	if highPotential := knowledge.HighPotentialTechnologies(); len(highPotential) > 0 && g.rng.Float64() < 0.7 {
		pick := highPotential[g.rng.Intn(len(highPotential))]
		technologies = append(technologies, strings.ToLower(pick.Technology))
	}
	return dedupe(technologies)
}

func (g *Generator) extractStakeholders(feats analysis.TextFeatures) []string {
	var stakeholders []string
	for _, ent := range feats.Entities {
		switch ent.Label {
		case "PERSON", "ORG", "NORP", "GPE":
			stakeholders = append(stakeholders, ent.Text)
		}
	}
	text := strings.ToLower(feats.Text)
	if containsAny(text, "health", "medical", "patient", "doctor") {
		stakeholders = append(stakeholders, "patient", "healthcare provider", "medical researcher")
	}
	if containsAny(text, "education", "learn", "student", "teach") {
		stakeholders = append(stakeholders, "student", "educator", "administrator")
	}
	if containsAny(text, "business", "company", "market", "product") {
		stakeholders = append(stakeholders, "business owner", "customer", "employee")
	}
	if containsAny(text, "environment", "sustainability", "climate") {
		stakeholders = append(stakeholders, "community", "policymaker", "environmental scientist")
	}
	for len(stakeholders) < 5 {
		stakeholders = append(stakeholders, g.choice(genericStakeholders))
	}
	return dedupe(stakeholders)
}

func (g *Generator) crossDomainIdeas(feats analysis.TextFeatures, relevance map[string]float64, level int) []string {
	topNames := scoring.Top(relevance, knowledge.InsightDomainKeywords, 3)

	concepts := make(map[string][]string, len(knowledge.DomainConcepts))
	for domain, list := range knowledge.DomainConcepts {
		concepts[domain] = append([]string(nil), list...)
	}
	for _, domain := range knowledge.InsightDomains {
		key, ok := knowledge.DomainMapping[domain]
		if !ok {
			continue
		}
		if td, ok := knowledge.TechDomains[key]; ok {
			for _, concept := range td.Concepts {
				formatted := strings.ReplaceAll(strings.ToLower(concept), " ", "-") + " approach"
				concepts[domain] = append(concepts[domain], formatted)
			}
		}
	}

	problem := func() string {
		if len(feats.Objectives) > 0 {
			return g.choice(feats.Objectives)
		}
		return "the core challenge"
	}

	var ideas []string
	numPattern := level
	if numPattern > len(knowledge.CrossDomainPatterns) {
		numPattern = len(knowledge.CrossDomainPatterns)
	}
	for _, i := range g.rng.Perm(len(knowledge.CrossDomainPatterns))[:numPattern] {
		p := knowledge.CrossDomainPatterns[i]
		example := p.Examples[g.rng.Intn(len(p.Examples))]
		if len(topNames) > 0 {
			domain := g.choice(topNames)
			ideas = append(ideas, fmt.Sprintf("Apply the '%s' pattern (%s) to %s in the %s domain, similar to %s",
				p.Pattern, p.Description, problem(), domain, example))
		} else {
			ideas = append(ideas, fmt.Sprintf("Use the '%s' pattern (%s) to address %s, drawing inspiration from %s",
				p.Pattern, p.Description, problem(), example))
		}
	}

	if level >= 4 {
		m := knowledge.Methodologies[g.rng.Intn(len(knowledge.Methodologies))]
		techniques := g.sample(m.Techniques, 2)
		if len(techniques) == 2 {
			ideas = append(ideas, fmt.Sprintf("Implement the %s methodology (%s) to address %s, specifically using %s and %s",
				m.Name, m.BestFor, problem(), techniques[0], techniques[1]))
		}
	}

	numStandard := level + 2
	if numStandard > 5 {
		numStandard = 5
	}
	numStandard -= len(ideas)
	for i := 0; i < numStandard; i++ {
		var domain1, domain2 string
		if len(topNames) >= 2 {
			pair := g.sample(topNames, 2)
			domain1, domain2 = pair[0], pair[1]
		} else {
			if len(topNames) > 0 {
				domain1 = topNames[0]
			} else {
				domain1 = g.choice(knowledge.InsightDomains)
			}
			domain2 = g.choiceExcept(knowledge.InsightDomains, domain1)
		}
		concept1 := "innovative approach"
		if pool := concepts[domain1]; len(pool) > 0 {
			concept1 = g.choice(pool)
		}
		concept2 := "novel methodology"
		if pool := concepts[domain2]; len(pool) > 0 {
			concept2 = g.choice(pool)
		}
		ideas = append(ideas, fill(g.choice(crossDomainTemplates), map[string]string{
			"concept1": concept1,
			"concept2": concept2,
			"domain1":  domain1,
			"domain2":  domain2,
			"problem":  problem(),
			"action":   g.choice(ideaActions),
		}))
	}

	ideas = dedupe(ideas)

	if level >= 5 && len(ideas) < 7 {
		if highPotential := knowledge.HighPotentialTechnologies(); len(highPotential) > 0 && len(topNames) > 0 {
			tech := highPotential[g.rng.Intn(len(highPotential))]
			domain := g.choice(topNames)
			app := tech.Applications[g.rng.Intn(len(tech.Applications))]
			ideas = append(ideas, fmt.Sprintf("Explore how %s could revolutionize %s through %s, creating entirely new possibilities",
				tech.Technology, domain, app))
		}
	}
	return ideas
}

func (g *Generator) suggestTechnologies(relevance map[string]float64, level int) []TechnologySuggestion {
	bank := make(map[string][]knowledge.Technology, len(knowledge.DomainTechnologies))
	for domain, list := range knowledge.DomainTechnologies {
		bank[domain] = append([]knowledge.Technology(nil), list...)
	}
	for _, domain := range knowledge.InsightDomains {
		key, ok := knowledge.DomainMapping[domain]
		if !ok {
			continue
		}
		td, ok := knowledge.TechDomains[key]
		if !ok {
			continue
		}
		categories := knowledge.ConceptCategories(domain)
		for _, concept := range td.Concepts {
			bank[domain] = append(bank[domain], knowledge.Technology{
				Technology: concept,
				Category:   categories[g.rng.Intn(len(categories))],
			})
		}
	}

	var emerging []knowledge.Technology
	for _, tech := range knowledge.EmergingTechnologies {
		if tech.Maturity == knowledge.MaturityEarly && level < 4 {
			continue
		}
		emerging = append(emerging, knowledge.Technology{
			Technology: tech.Technology,
			Category:   emergingCategory(tech.Technology),
		})
	}

	var out []TechnologySuggestion
	for _, d := range topDomainsWithScores(relevance, 3) {
		pool := bank[d.name]
		if len(pool) == 0 {
			continue
		}
		n := level + 2
		if n > len(pool) {
			n = len(pool)
		}
		for _, i := range g.rng.Perm(len(pool))[:n] {
			rel := d.score * (0.7 + g.rng.Float64()*0.3)
			if rel > 10 {
				rel = 10
			}
			if rel < 1 {
				rel = 1
			}
			out = append(out, TechnologySuggestion{
				Technology: pool[i].Technology,
				Category:   pool[i].Category,
				Relevance:  rel,
			})
		}
	}

	n := level + 1
	if n > len(knowledge.CrossDomainTechnologies) {
		n = len(knowledge.CrossDomainTechnologies)
	}
	for _, i := range g.rng.Perm(len(knowledge.CrossDomainTechnologies))[:n] {
		tech := knowledge.CrossDomainTechnologies[i]
		out = append(out, TechnologySuggestion{
			Technology: tech.Technology,
			Category:   tech.Category,
			Relevance:  5 + g.rng.Float64()*3,
		})
	}

	if level >= 3 && len(emerging) > 0 {
		n := level - 1
		if n > len(emerging) {
			n = len(emerging)
		}
		for _, i := range g.rng.Perm(len(emerging))[:n] {
			var rel float64
			if level >= 4 {
				rel = 7 + g.rng.Float64()*3
			} else {
				rel = 4 + g.rng.Float64()*4
			}
			out = append(out, TechnologySuggestion{
				Technology: emerging[i].Technology,
				Category:   emerging[i].Category,
				Relevance:  rel,
			})
		}
	}

	// level 5 guarantees one breakthrough entry unless the technology is
	// already suggested under another category.
	if level == 5 {
		if highPotential := knowledge.HighPotentialTechnologies(); len(highPotential) > 0 {
			pick := highPotential[g.rng.Intn(len(highPotential))]
			present := false
			for _, t := range out {
				if t.Technology == pick.Technology {
					present = true
					break
				}
			}
			if !present {
				out = append(out, TechnologySuggestion{
					Technology: pick.Technology,
					Category:   "Breakthrough Technology",
					Relevance:  10,
				})
			}
		}
	}
	return out
}

func emergingCategory(name string) string {
	switch {
	case strings.Contains(name, "Computing") || strings.Contains(name, "AI"):
		return "Advanced Computing"
	case strings.Contains(name, "Energy"):
		return "Energy Innovation"
	case strings.Contains(name, "Reality") || strings.Contains(name, "Interface"):
		return "Human-Computer Interaction"
	case strings.Contains(name, "Biology"):
		return "Biotechnology"
	default:
		return "Emerging Technology"
	}
}

type rankedDomain struct {
	name  string
	score float64
}

// topDomainsWithScores ranks insight domains by relevance, ties broken by
// the canonical domain order.
func topDomainsWithScores(relevance map[string]float64, n int) []rankedDomain {
	ranked := make([]rankedDomain, 0, len(knowledge.InsightDomains))
	for _, domain := range knowledge.InsightDomains {
		ranked = append(ranked, rankedDomain{domain, relevance[domain]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (g *Generator) choice(list []string) string {
	return list[g.rng.Intn(len(list))]
}

func (g *Generator) choiceExcept(list []string, except string) string {
	var pool []string
	for _, s := range list {
		if s != except {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return except
	}
	return pool[g.rng.Intn(len(pool))]
}

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

func fill(template string, slots map[string]string) string {
	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(slots)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", slots[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
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

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
