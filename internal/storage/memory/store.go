// Package memory provides the in-process ReviewRepository. It is the
// reference backend: a mutex-guarded append-only log with a monotonic ID
// counter, suitable for tests and single-node deployments without MySQL.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	reviews []domain.Review
	nextID  int64
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Add(ctx context.Context, text string, label domain.Sentiment) (domain.Review, error) {
	// Validate before touching the counter: a rejected insert must not
	// consume an ID or leave partial state behind.
	if err := domain.ValidateText(text); err != nil {
		return domain.Review{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Review{
		ID:        s.nextID,
		Text:      text,
		Sentiment: label,
		CreatedAt: time.Now().UTC(),
	}
	// created_at must be non-decreasing in ID order even if the wall clock
	// stutters between locked sections.
	if n := len(s.reviews); n > 0 && r.CreatedAt.Before(s.reviews[n-1].CreatedAt) {
		r.CreatedAt = s.reviews[n-1].CreatedAt
	}
	s.reviews = append(s.reviews, r)
	s.nextID++
	return r, nil
}

func (s *Store) List(ctx context.Context, q domain.ReviewsQuery) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy under the lock so callers get a stable snapshot. Review holds no
	// reference types, so a shallow copy is a full one.
	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if q.Sentiment != nil && r.Sentiment != *q.Sentiment {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
