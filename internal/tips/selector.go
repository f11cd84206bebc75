// Package tips selects hackathon advice tailored to a problem's domain,
// technical approach, audience, and complexity.
package tips

import (
	"sort"
	"strings"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/knowledge"
	"github.com/hackseek-app/hackseek/internal/scoring"
)

// DomainAnalysis carries the raw keyword scores and the primaries derived
// from them. Primaries fall back to the first table category when nothing
// matches, so they are always set.
type DomainAnalysis struct {
	DomainScores    map[string]float64 `json:"domain_scores"`
	ApproachScores  map[string]float64 `json:"approach_scores"`
	UserScores      map[string]float64 `json:"user_scores"`
	PrimaryDomain   string             `json:"primary_domain"`
	PrimaryApproach string             `json:"primary_approach"`
	PrimaryUser     string             `json:"primary_user"`
	TopDomains      []string           `json:"top_domains"`
	TopApproaches   []string           `json:"top_approaches"`
	TopUsers        []string           `json:"top_users"`
}

// SpecializedTips holds the four context-selected tip slots.
type SpecializedTips struct {
	DomainTip     knowledge.SpecialTip `json:"domain_tip"`
	ApproachTip   knowledge.SpecialTip `json:"approach_tip"`
	ComplexityTip knowledge.SpecialTip `json:"complexity_tip"`
	UserTip       knowledge.SpecialTip `json:"user_tip"`
}

// SelectedTips holds the general tips filtered down for this problem.
type SelectedTips struct {
	PlanningTips     []knowledge.Tip     `json:"planning_tips"`
	TechTips         []knowledge.Tip     `json:"tech_tips"`
	PresentationTips []knowledge.Tip     `json:"presentation_tips"`
	JudgeInsights    []knowledge.Tip     `json:"judge_insights"`
	Pitfalls         []knowledge.Pitfall `json:"pitfalls"`
}

// ContextAwareTips is the output of the tips stage.
type ContextAwareTips struct {
	DomainAnalysis  DomainAnalysis  `json:"domain_analysis"`
	SpecializedTips SpecializedTips `json:"specialized_tips"`
	SelectedTips    SelectedTips    `json:"selected_tips"`
}

// Selector maps problem features onto the static tip tables. Scoring here
// uses raw keyword scores, not the normalized pipeline scores, so primary
// selection never takes the randomized zero-match fallback.
type Selector struct {
	scorer *scoring.Scorer
}

func NewSelector(scorer *scoring.Scorer) *Selector {
	return &Selector{scorer: scorer}
}

// Select builds the full tip bundle for the analyzed problem.
func (s *Selector) Select(feats analysis.TextFeatures) ContextAwareTips {
	da := s.analyzeDomains(feats)
	return ContextAwareTips{
		DomainAnalysis: da,
		SpecializedTips: SpecializedTips{
			DomainTip:     knowledge.DomainTip(da.PrimaryDomain),
			ApproachTip:   knowledge.ApproachTip(da.PrimaryApproach),
			ComplexityTip: knowledge.ComplexityTip(feats.Complexity),
			UserTip:       knowledge.UserTip(da.PrimaryUser),
		},
		SelectedTips: SelectedTips{
			PlanningTips:     topByImportance(append(append([]knowledge.Tip(nil), knowledge.PlanningTips["pre_event"]...), knowledge.PlanningTips["day_of_event"]...), 3),
			TechTips:         techTips(da.PrimaryApproach),
			PresentationTips: []knowledge.Tip{knowledge.PresentationStrategies["demo"][0], knowledge.PresentationStrategies["pitch"][0]},
			JudgeInsights:    topByImportance(knowledge.JudgeInsights, 2),
			Pitfalls:         highImpactPitfalls(2),
		},
	}
}

func (s *Selector) analyzeDomains(feats analysis.TextFeatures) DomainAnalysis {
	domainScores := s.scorer.Raw(feats, knowledge.TipDomainKeywords)
	approachScores := s.scorer.Raw(feats, knowledge.ApproachKeywords)
	userScores := s.scorer.Raw(feats, knowledge.TargetUserKeywords)
	return DomainAnalysis{
		DomainScores:    domainScores,
		ApproachScores:  approachScores,
		UserScores:      userScores,
		PrimaryDomain:   scoring.Primary(domainScores, knowledge.TipDomainKeywords),
		PrimaryApproach: scoring.Primary(approachScores, knowledge.ApproachKeywords),
		PrimaryUser:     scoring.Primary(userScores, knowledge.TargetUserKeywords),
		TopDomains:      scoring.Top(domainScores, knowledge.TipDomainKeywords, 3),
		TopApproaches:   scoring.Top(approachScores, knowledge.ApproachKeywords, 3),
		TopUsers:        scoring.Top(userScores, knowledge.TargetUserKeywords, 3),
	}
}

// techTips picks 2 execution tips: design and user-experience advice for
// mobile/web approaches, familiar-tech and core-functionality advice for
// everything else, padded from the remaining pool when matches are thin.
func techTips(primaryApproach string) []knowledge.Tip {
	all := append(append([]knowledge.Tip(nil), knowledge.TechnicalStrategies["development"]...), knowledge.TechnicalStrategies["design"]...)

	var keywords []string
	if primaryApproach == "mobile" || primaryApproach == "web" {
		keywords = []string{"design", "user"}
	} else {
		keywords = []string{"familiar", "core"}
	}

	var selected []knowledge.Tip
	for _, tip := range all {
		if len(selected) >= 2 {
			break
		}
		title := strings.ToLower(tip.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				selected = append(selected, tip)
				break
			}
		}
	}
	for _, tip := range all {
		if len(selected) >= 2 {
			break
		}
		dup := false
		for _, sel := range selected {
			if sel.Title == tip.Title {
				dup = true
				break
			}
		}
		if !dup {
			selected = append(selected, tip)
		}
	}
	return selected
}

func topByImportance(pool []knowledge.Tip, n int) []knowledge.Tip {
	sorted := append([]knowledge.Tip(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func highImpactPitfalls(n int) []knowledge.Pitfall {
	var out []knowledge.Pitfall
	for _, p := range knowledge.PitfallAvoidance {
		if p.Impact == "High" {
			out = append(out, p)
			if len(out) >= n {
				break
			}
		}
	}
	return out
}
