package sentiment

// Lexicon holds the indicator stems the classifier matches against. Stems
// are matched as lowercase prefixes of normalized tokens, so one stem covers
// the inflected forms ("отличн" matches "отлично", "отличный", "отличная").
// The two sets must stay disjoint; a stem listed on both sides would count
// for both polarities.
type Lexicon struct {
	Positive []string
	Negative []string
}

// DefaultLexicon covers short-form Russian and English review vocabulary.
// It is configuration, not behavior: swapping the word lists changes which
// texts hit which label, but never the tie-to-neutral rule.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"хорош", "отличн", "прекрасн", "люблю", "нравится", "супер", "класс",
			"good", "great", "excellent", "awesome", "love", "perfect", "nice",
		},
		Negative: []string{
			"плох", "ужасн", "ненавиж", "отвратительн", "кошмар", "разочарован",
			"bad", "terrible", "awful", "horrible", "hate", "worst",
		},
	}
}
