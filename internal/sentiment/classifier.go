// Package sentiment implements keyword-based sentiment classification for
// short free-text reviews. The classifier is a pure function over its
// lexicon: no I/O, no state, same text always yields the same label.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
)

type Classifier struct {
	positive []string
	negative []string
}

func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{positive: lowerAll(lex.Positive), negative: lowerAll(lex.Negative)}
}

// Classify counts positive- and negative-indicating tokens in text. More
// positive hits wins positive, more negative hits wins negative, and a tie
// (including no hits at all) is neutral. Ambiguity is never an error.
func (c *Classifier) Classify(text string) domain.Sentiment {
	var pos, neg int
	for _, tok := range tokenize(text) {
		if hasStem(tok, c.positive) {
			pos++
		}
		if hasStem(tok, c.negative) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func hasStem(tok string, stems []string) bool {
	for _, s := range stems {
		if strings.HasPrefix(tok, s) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
