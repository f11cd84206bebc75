// Package scoring rates problem text against categorized keyword tables.
package scoring

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/hackseek-app/hackseek/internal/analysis"
	"github.com/hackseek-app/hackseek/internal/knowledge"
)

// Scorer computes category relevance scores. The random source only feeds
// the zero-match fallback; scoring itself is deterministic.
type Scorer struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Raw computes unnormalized relevance scores for every category in the
// table. Keyword hits in the full text count double; token, key-phrase, and
// entity hits add 1, 1, and 2 respectively, entities weighted higher since
// they are more specific.
func (s *Scorer) Raw(feats analysis.TextFeatures, table knowledge.KeywordTable) map[string]float64 {
	text := strings.ToLower(feats.Text)
	scores := make(map[string]float64, len(table.Categories))
	for _, category := range table.Categories {
		var score float64
		for _, kw := range table.Keywords[category] {
			kw = strings.ToLower(kw)
			if n := strings.Count(text, kw); n > 0 {
				score += float64(2 * n)
			}
			for _, tok := range feats.Tokens {
				if tok == kw {
					score++
				}
			}
			for _, phrase := range feats.KeyPhrases {
				if strings.Contains(strings.ToLower(phrase), kw) {
					score++
				}
			}
			for _, ent := range feats.Entities {
				if strings.Contains(strings.ToLower(ent.Text), kw) {
					score += 2
				}
			}
		}
		scores[category] = score
	}
	return scores
}

// Score normalizes Raw scores into [0,10]. When nothing matches at all,
// three random categories get a score in [5,10) so downstream stages always
// have something to work with.
func (s *Scorer) Score(feats analysis.TextFeatures, table knowledge.KeywordTable) map[string]float64 {
	scores := s.Raw(feats, table)

	var max float64
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		perm := s.rng.Perm(len(table.Categories))
		n := 3
		if len(perm) < n {
			n = len(perm)
		}
		for _, i := range perm[:n] {
			scores[table.Categories[i]] = 5 + s.rng.Float64()*5
		}
		return scores
	}
	for k, v := range scores {
		scores[k] = v / max * 10
	}
	return scores
}

// Top returns up to n category names ranked by score, highest first,
// dropping zero scores. Ties keep the table's category order.
func Top(scores map[string]float64, table knowledge.KeywordTable, n int) []string {
	ranked := make([]string, len(table.Categories))
	copy(ranked, table.Categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	var out []string
	for _, category := range ranked {
		if len(out) >= n || scores[category] <= 0 {
			break
		}
		out = append(out, category)
	}
	return out
}

// Primary returns the top-scoring category, or the table's first category
// when every score is zero.
func Primary(scores map[string]float64, table knowledge.KeywordTable) string {
	top := Top(scores, table, 1)
	if len(top) > 0 {
		return top[0]
	}
	return table.Categories[0]
}
