package app

import (
	"context"
	"time"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/observability"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
)

// ReviewService glues the classifier to the review log and keeps the redis
// listing cache coherent. A nil cache disables caching entirely.
type ReviewService struct {
	classifier domain.Classifier
	repo       domain.ReviewRepository
	cache      domain.Cache
	cacheTTL   time.Duration
}

func NewReviewService(c domain.Classifier, r domain.ReviewRepository, cache domain.Cache, ttl time.Duration) *ReviewService {
	return &ReviewService{classifier: c, repo: r, cache: cache, cacheTTL: ttl}
}

// Create classifies text and appends the resulting review. Validation runs
// before classification so the classifier never sees empty input; the repo
// validates again on its own and consumes no ID on failure.
func (s *ReviewService) Create(ctx context.Context, text string) (domain.Review, error) {
	if err := domain.ValidateText(text); err != nil {
		return domain.Review{}, err
	}

	label := s.classifier.Classify(text)
	r, err := s.repo.Add(ctx, text, label)
	if err != nil {
		return domain.Review{}, err
	}
	observability.ObserveClassified(label.String())

	// A new review changes the full listing and the listing of its own
	// label; the other two label listings are untouched.
	if s.cache != nil {
		_ = s.cache.Del(ctx, listingKey(nil))
		_ = s.cache.Del(ctx, listingKey(&label))
	}
	return r, nil
}

// List returns reviews in ascending ID order, optionally narrowed to one
// sentiment. Results are served cache-aside with a short TTL.
func (s *ReviewService) List(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error) {
	key := listingKey(filter)
	if s.cache != nil {
		var cached []domain.Review
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	out, err := s.repo.List(ctx, domain.ReviewsQuery{Sentiment: filter})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func listingKey(filter *domain.Sentiment) string {
	if filter == nil {
		return "reviews:all"
	}
	return "reviews:" + filter.String()
}
