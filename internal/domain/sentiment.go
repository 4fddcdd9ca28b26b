package domain

import "fmt"

// Sentiment is the closed label set a review can carry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists every valid label, in no particular order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

func (s Sentiment) String() string { return string(s) }

// ParseSentiment maps a raw string (e.g. a query parameter) onto the label
// set. Anything outside the three labels is a validation failure.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s), nil
	}
	return "", NewValidationError(fmt.Sprintf("unknown sentiment %q: expected positive, neutral or negative", s))
}
