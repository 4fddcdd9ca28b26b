package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Add appends one review. The reviews table uses AUTO_INCREMENT for id, so
// uniqueness and strict monotonicity under concurrent inserts come from the
// database; a validation failure returns before any statement runs and
// therefore consumes no id.
func (r *Repo) Add(ctx context.Context, text string, label domain.Sentiment) (domain.Review, error) {
	if err := domain.ValidateText(text); err != nil {
		return domain.Review{}, err
	}

	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertReviewSQL, text, label.String(), createdAt)
	if err != nil {
		return domain.Review{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	return domain.Review{ID: id, Text: text, Sentiment: label, CreatedAt: createdAt}, nil
}

func (r *Repo) List(ctx context.Context, q domain.ReviewsQuery) ([]domain.Review, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if q.Sentiment != nil {
		rows, err = r.db.QueryContext(ctx, listReviewsBySentimentSQL, q.Sentiment.String())
	} else {
		rows, err = r.db.QueryContext(ctx, listReviewsSQL)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Review, 0)
	for rows.Next() {
		var (
			rv        domain.Review
			label     string
			createdAt time.Time
		)
		if err := rows.Scan(&rv.ID, &rv.Text, &label, &createdAt); err != nil {
			return nil, err
		}
		rv.Sentiment = domain.Sentiment(label)
		rv.CreatedAt = createdAt.UTC()
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
