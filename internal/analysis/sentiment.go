package analysis

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// valence maps sentiment-bearing words to weights on a [-5,5] scale.
var valence = map[string]float64{
	"excellent": 4, "outstanding": 4, "amazing": 4, "wonderful": 4,
	"great": 3, "fantastic": 4, "love": 3, "best": 3, "innovative": 2,
	"good": 2, "improve": 2, "improved": 2, "improvement": 2, "benefit": 2,
	"better": 2, "easy": 2, "easily": 2, "effective": 2, "efficient": 2,
	"success": 2, "successful": 2, "helpful": 2, "help": 1, "useful": 2,
	"opportunity": 1, "growth": 1, "safe": 1, "reliable": 2, "clean": 1,
	"affordable": 2, "accessible": 1, "simple": 1, "fast": 1,

	"terrible": -4, "horrible": -4, "awful": -4, "worst": -3, "hate": -3,
	"bad": -2, "poor": -2, "fail": -2, "failure": -2, "failing": -2,
	"problem": -1, "problems": -1, "difficult": -2, "difficulty": -2,
	"hard": -1, "struggle": -2, "struggling": -2, "crisis": -3,
	"costly": -2, "expensive": -1, "waste": -2, "wasteful": -2,
	"inefficient": -2, "unreliable": -2, "unsafe": -2, "dangerous": -3,
	"risk": -1, "risky": -2, "broken": -2, "lack": -1, "lacking": -1,
	"shortage": -2, "barrier": -1, "barriers": -1, "slow": -1,
	"confusing": -2, "complicated": -1, "overwhelmed": -2, "burden": -2,
	"error": -1, "errors": -1, "loss": -2, "damage": -2, "harm": -2,
	"inadequate": -2, "insufficient": -2, "outdated": -2, "fragmented": -1,
}

// scoreSentiment averages word valences over matched tokens and scales to
// [-1,1]. A negation token flips the sign of the word that follows it.
func scoreSentiment(tokens []prose.Token) float64 {
	var sum float64
	matches := 0
	negate := false
	for _, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if negationWords[word] {
			negate = true
			continue
		}
		if v, ok := valence[word]; ok {
			if negate {
				v = -v
			}
			sum += v
			matches++
		}
		negate = false
	}
	if matches == 0 {
		return 0
	}
	score := sum / float64(matches) / 5
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}
