package domain

import (
	"strings"
	"time"
)

// Review is append-only: once created, no field ever changes.
type Review struct {
	ID        int64
	Text      string
	Sentiment Sentiment
	CreatedAt time.Time // UTC
}

// ValidateText checks a submitted review body. The text itself is stored
// verbatim; only the non-empty-after-trim constraint is enforced.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
