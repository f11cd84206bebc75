// Package analysis extracts structured features from free-text problem
// statements: entities, key phrases, objectives, constraints, sentiment,
// and a complexity estimate.
package analysis

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Entity is a named entity with character offsets into the source text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TextFeatures is the feature bundle derived once per problem statement.
type TextFeatures struct {
	Text        string   `json:"text"`
	Objectives  []string `json:"objectives"`
	Constraints []string `json:"constraints"`
	Entities    []Entity `json:"entities"`
	KeyPhrases  []string `json:"key_phrases"`
	Tokens      []string `json:"-"`
	Sentiment   float64  `json:"sentiment"`
	Complexity  float64  `json:"complexity"`
}

var constraintKeywords = []string{
	"must", "should", "cannot", "can't", "limited", "constraint",
	"restriction", "only", "maximum", "minimum", "at least", "at most",
}

var negationWords = map[string]bool{
	"not": true, "n't": true, "never": true, "no": true,
}

var contrastWords = map[string]bool{
	"but": true, "however": true, "though": true,
}

// subordinators mark clause boundaries used in the complexity estimate.
var subordinators = map[string]bool{
	"because": true, "although": true, "while": true, "since": true,
	"if": true, "unless": true, "whereas": true, "though": true,
	"that": true, "which": true, "who": true, "when": true,
	"after": true, "before": true, "until": true,
}

// Extractor derives TextFeatures from raw text. Safe for concurrent use.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract analyzes the text. It never fails: empty or unparseable input
// yields near-empty features with zero sentiment and complexity.
func (e *Extractor) Extract(text string) TextFeatures {
	feats := TextFeatures{
		Text:        text,
		Objectives:  []string{},
		Constraints: []string{},
		Entities:    []Entity{},
		KeyPhrases:  []string{},
		Tokens:      []string{},
	}
	if strings.TrimSpace(text) == "" {
		return feats
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return feats
	}

	tokens := doc.Tokens()
	sentences := doc.Sentences()

	for _, tok := range tokens {
		feats.Tokens = append(feats.Tokens, strings.ToLower(tok.Text))
	}

	feats.Entities = locateEntities(text, doc.Entities())
	feats.KeyPhrases = nounPhrases(tokens)
	feats.Objectives = extractObjectives(sentences)
	feats.Constraints = extractConstraints(sentences)
	feats.Sentiment = scoreSentiment(tokens)
	feats.Complexity = complexity(text, len(sentences), len(feats.Entities), tokens)

	if len(feats.Objectives) > 5 {
		feats.Objectives = feats.Objectives[:5]
	}
	if len(feats.Constraints) > 5 {
		feats.Constraints = feats.Constraints[:5]
	}
	return feats
}

// locateEntities attaches character offsets by scanning the source text left
// to right, so repeated mentions resolve to successive positions.
func locateEntities(text string, ents []prose.Entity) []Entity {
	out := make([]Entity, 0, len(ents))
	cursor := 0
	for _, ent := range ents {
		idx := strings.Index(text[cursor:], ent.Text)
		if idx < 0 {
			idx = strings.Index(text, ent.Text)
			if idx < 0 {
				continue
			}
			cursor = 0
		}
		start := cursor + idx
		end := start + len(ent.Text)
		out = append(out, Entity{Text: ent.Text, Label: ent.Label, Start: start, End: end})
		cursor = end
	}
	return out
}

// nounPhrases groups determiner/adjective/noun runs ending in a noun into
// phrases. Falls back to bare nouns when no runs are found.
func nounPhrases(tokens []prose.Token) []string {
	var phrases []string
	var run []string
	lastNoun := -1

	flush := func() {
		if lastNoun >= 0 {
			phrases = append(phrases, strings.Join(run[:lastNoun+1], " "))
		}
		run = nil
		lastNoun = -1
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			lastNoun = len(run) - 1
		case tok.Tag == "DT" || strings.HasPrefix(tok.Tag, "JJ"):
			if len(run) == 0 && tok.Tag == "DT" {
				run = append(run, tok.Text)
			} else if strings.HasPrefix(tok.Tag, "JJ") {
				run = append(run, tok.Text)
			} else {
				flush()
				run = append(run, tok.Text)
			}
		default:
			flush()
		}
	}
	flush()

	if len(phrases) > 0 {
		return phrases
	}
	for _, tok := range tokens {
		if strings.HasPrefix(tok.Tag, "NN") {
			phrases = append(phrases, tok.Text)
		}
	}
	if phrases == nil {
		phrases = []string{}
	}
	return phrases
}

// extractObjectives takes, per sentence, the span from the first verb to the
// sentence end as a candidate objective phrase. Spans of three or more
// tokens qualify; otherwise the first three sentences stand in.
func extractObjectives(sentences []prose.Sentence) []string {
	var objectives []string
	for _, sent := range sentences {
		sentDoc, err := prose.NewDocument(sent.Text,
			prose.WithExtraction(false), prose.WithSegmentation(false))
		if err != nil {
			continue
		}
		toks := sentDoc.Tokens()
		for i, tok := range toks {
			if strings.HasPrefix(tok.Tag, "VB") {
				if len(toks)-i > 2 {
					words := make([]string, 0, len(toks)-i)
					for _, t := range toks[i:] {
						words = append(words, t.Text)
					}
					objectives = append(objectives, strings.Join(words, " "))
				}
				break
			}
		}
	}
	if len(objectives) == 0 {
		for i, sent := range sentences {
			if i >= 3 {
				break
			}
			objectives = append(objectives, sent.Text)
		}
	}
	if objectives == nil {
		objectives = []string{}
	}
	return objectives
}

// extractConstraints keeps sentences carrying a constraint keyword or a
// negation; if none match, sentences with a contrast word stand in.
func extractConstraints(sentences []prose.Sentence) []string {
	var constraints []string
	for _, sent := range sentences {
		lower := strings.ToLower(sent.Text)
		matched := false
		for _, kw := range constraintKeywords {
			if strings.Contains(lower, kw) {
				constraints = append(constraints, sent.Text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, word := range strings.Fields(lower) {
			if negationWords[strings.Trim(word, ".,;:!?")] {
				constraints = append(constraints, sent.Text)
				break
			}
		}
	}
	if len(constraints) == 0 {
		for _, sent := range sentences {
			for _, word := range strings.Fields(strings.ToLower(sent.Text)) {
				if contrastWords[strings.Trim(word, ".,;:!?")] {
					constraints = append(constraints, sent.Text)
					break
				}
			}
		}
	}
	if constraints == nil {
		constraints = []string{}
	}
	return constraints
}

// complexity blends text length, sentence count, entity count, and
// subordinate-clause density into a [0,1] score.
func complexity(text string, sentenceCount, entityCount int, tokens []prose.Token) float64 {
	clauses := 0
	for _, tok := range tokens {
		if subordinators[strings.ToLower(tok.Text)] {
			clauses++
		}
	}
	score := (float64(len(text))/500 +
		float64(sentenceCount)/10 +
		float64(entityCount)/10 +
		float64(clauses)/5) / 4
	if score > 1 {
		score = 1
	}
	return score
}
