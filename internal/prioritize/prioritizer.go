// Package prioritize converts innovation output into ranked action items.
package prioritize

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/hackseek-app/hackseek/internal/innovation"
)

// Action is a prioritized work item derived from a solution approach step.
type Action struct {
	Action          string  `json:"action"`
	Description     string  `json:"description"`
	Impact          float64 `json:"impact"`
	Difficulty      float64 `json:"difficulty"`
	PriorityScore   float64 `json:"priority_score"`
	Timeframe       string  `json:"timeframe"`
	Resources       string  `json:"resources"`
	RelatedSolution string  `json:"related_solution"`
}

var timeframes = []string{
	"Short-term (1-3 months)",
	"Medium-term (3-6 months)",
	"Long-term (6+ months)",
}

// timeframeWeights favor shorter timeframes: 50% short, 30% medium, 20% long.
var timeframeWeights = []float64{0.5, 0.3, 0.2}

var resourceOptions = []string{
	"Development team", "Product management", "UX/UI design",
	"Data science expertise", "Subject matter experts",
	"Testing resources", "Infrastructure support",
}

var genericActions = []rawAction{
	{"Conduct Needs Assessment", "Analyze current state and identify specific requirements", "Initial Planning"},
	{"Develop Prototype", "Create initial version to validate core concepts", "Solution Development"},
	{"Gather User Feedback", "Collect and analyze user responses to improve solution", "Validation"},
	{"Implement Core Features", "Build the essential functionalities of the solution", "Development"},
	{"Deploy and Monitor", "Launch the solution and track performance metrics", "Implementation"},
}

type rawAction struct {
	action          string
	description     string
	relatedSolution string
}

// Prioritizer scores and ranks actions. Impact, difficulty, timeframe, and
// resource draws all come from the injected source.
type Prioritizer struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Prioritizer {
	return &Prioritizer{rng: rng}
}

// Prioritize parses solution approach steps into actions, scores each, and
// returns them sorted by descending priority score.
func (p *Prioritizer) Prioritize(inn innovation.Innovations) []Action {
	raw := parseActions(inn)

	out := make([]Action, 0, len(raw))
	for _, a := range raw {
		impact := 5 + p.rng.Float64()*5
		difficulty := 3 + p.rng.Float64()*5
		out = append(out, Action{
			Action:          a.action,
			Description:     a.description,
			Impact:          impact,
			Difficulty:      difficulty,
			PriorityScore:   impact / (difficulty * 0.5),
			Timeframe:       p.pickTimeframe(),
			Resources:       strings.Join(p.pickResources(), ", "),
			RelatedSolution: a.relatedSolution,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}

// parseActions splits each solution's approach text on line breaks and pulls
// out the bold "name: description" steps. Thin results are padded with
// technology-implementation actions, then the generic fallback list.
func parseActions(inn innovation.Innovations) []rawAction {
	var actions []rawAction
	for _, sol := range inn.Solutions {
		for _, step := range strings.Split(sol.Approach, "\n") {
			if !strings.Contains(step, "**") {
				continue
			}
			parts := strings.SplitN(step, "**: ", 2)
			if len(parts) < 2 {
				continue
			}
			name := strings.TrimSpace(strings.ReplaceAll(parts[0], "**", ""))
			actions = append(actions, rawAction{
				action:          fmt.Sprintf("%s for %s", name, strings.SplitN(sol.Title, " to ", 2)[0]),
				description:     strings.TrimSpace(parts[1]),
				relatedSolution: sol.Title,
			})
		}
	}

	if len(actions) < 5 {
		techs := inn.Technologies
		if len(techs) > 3 {
			techs = techs[:3]
		}
		for _, tech := range techs {
			actions = append(actions, rawAction{
				action:          "Implement " + tech.Technology,
				description:     fmt.Sprintf("Integrate %s to enhance capabilities in the %s area", tech.Technology, tech.Category),
				relatedSolution: "Technology Enhancement",
			})
		}
	}

	if len(actions) == 0 {
		actions = append(actions, genericActions...)
	}
	return actions
}

func (p *Prioritizer) pickTimeframe() string {
	r := p.rng.Float64()
	var acc float64
	for i, w := range timeframeWeights {
		acc += w
		if r < acc {
			return timeframes[i]
		}
	}
	return timeframes[len(timeframes)-1]
}

func (p *Prioritizer) pickResources() []string {
	n := 1 + p.rng.Intn(3)
	out := make([]string, 0, n)
	for _, i := range p.rng.Perm(len(resourceOptions))[:n] {
		out = append(out, resourceOptions[i])
	}
	return out
}
