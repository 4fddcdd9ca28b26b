package domain

import "context"

// ReviewRepository is the append-only review log. Implementations must assign
// IDs starting at 1, strictly increasing with insertion order and without
// gaps, even under concurrent Add calls. A failed Add consumes no ID.
type ReviewRepository interface {
	// Add validates text (non-empty after trimming), stamps the next ID and
	// the current UTC time, appends the record and returns it in full.
	Add(ctx context.Context, text string, s Sentiment) (Review, error)

	// List returns reviews matching q in ascending ID order. The ordering is
	// part of the contract: identical store state yields identical listings.
	List(ctx context.Context, q ReviewsQuery) ([]Review, error)
}

// Classifier assigns a sentiment label to a review body. Implementations
// must be pure: same text, same label, no I/O, no hidden state.
type Classifier interface {
	Classify(text string) Sentiment
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ReviewsQuery narrows a listing. A nil Sentiment means "all reviews".
type ReviewsQuery struct {
	Sentiment *Sentiment
}
