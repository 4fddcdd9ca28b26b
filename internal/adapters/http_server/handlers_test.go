package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	httpserver "github.com/stayer56/UCAR-sentiment-analysis/internal/adapters/http_server"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/app"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/sentiment"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/storage/memory"
)

type reviewBody struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"created_at"`
}

func newTestServer(t *testing.T, limiter *rate.Limiter) *httptest.Server {
	t.Helper()
	classifier := sentiment.NewClassifier(sentiment.DefaultLexicon())
	svc := app.NewReviewService(classifier, memory.New(), nil, time.Minute)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Svc: svc, InsertLimiter: limiter})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postReview(t *testing.T, ts *httptest.Server, text string) (*http.Response, reviewBody) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	res, err := http.Post(ts.URL+"/reviews", "application/json", strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("POST /reviews: %v", err)
	}
	var rb reviewBody
	if res.StatusCode == http.StatusCreated {
		if err := json.NewDecoder(res.Body).Decode(&rb); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	res.Body.Close()
	return res, rb
}

func getReviews(t *testing.T, ts *httptest.Server, query string) (*http.Response, []reviewBody) {
	t.Helper()
	res, err := http.Get(ts.URL + "/reviews" + query)
	if err != nil {
		t.Fatalf("GET /reviews: %v", err)
	}
	var out []reviewBody
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	res.Body.Close()
	return res, out
}

func TestReviews_EndToEnd(t *testing.T) {
	ts := newTestServer(t, nil)
	before := time.Now().UTC().Truncate(time.Second)

	res, first := postReview(t, ts, "Отлично")
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}
	if first.ID != 1 || first.Text != "Отлично" || first.Sentiment != "positive" {
		t.Fatalf("unexpected review: %+v", first)
	}
	createdAt, err := time.Parse("2006-01-02T15:04:05.000000", first.CreatedAt)
	if err != nil {
		t.Fatalf("created_at %q not in expected format: %v", first.CreatedAt, err)
	}
	if createdAt.Before(before) {
		t.Fatalf("created_at %v before request time %v", createdAt, before)
	}

	// Two identical neutral texts get two distinct consecutive IDs.
	_, second := postReview(t, ts, "Нормальный сервис, но можно лучше")
	_, third := postReview(t, ts, "Нормальный сервис, но можно лучше")
	if second.Sentiment != "neutral" || third.Sentiment != "neutral" {
		t.Fatalf("expected neutral, got %s and %s", second.Sentiment, third.Sentiment)
	}
	if second.ID != 2 || third.ID != 3 {
		t.Fatalf("expected ids 2 and 3, got %d and %d", second.ID, third.ID)
	}

	res, all := getReviews(t, ts, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(all))
	}
	for i, want := range []int64{1, 2, 3} {
		if all[i].ID != want {
			t.Fatalf("listing not in insertion order: %+v", all)
		}
	}
	if all[0].Text != first.Text || all[0].Sentiment != first.Sentiment || all[0].CreatedAt != first.CreatedAt {
		t.Fatalf("stored review differs from created one: %+v vs %+v", all[0], first)
	}

	_, neutral := getReviews(t, ts, "?sentiment=neutral")
	if len(neutral) != 2 || neutral[0].ID != 2 || neutral[1].ID != 3 {
		t.Fatalf("unexpected neutral listing: %+v", neutral)
	}
}

func TestCreateReview_Validation(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, text := range []string{"", "   "} {
		res, _ := postReview(t, ts, text)
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("POST with %q: status %d, want 400", text, res.StatusCode)
		}
	}

	// Rejected inserts consume no IDs and appear in no listing.
	res, created := postReview(t, ts, "после ошибок")
	if res.StatusCode != http.StatusCreated || created.ID != 1 {
		t.Fatalf("expected first valid review to get id 1, got %+v (status %d)", created, res.StatusCode)
	}
	_, all := getReviews(t, ts, "")
	if len(all) != 1 {
		t.Fatalf("expected 1 review, got %d", len(all))
	}
}

func TestCreateReview_BadBody(t *testing.T) {
	ts := newTestServer(t, nil)

	res, err := http.Post(ts.URL+"/reviews", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestListReviews_UnknownFilter(t *testing.T) {
	ts := newTestServer(t, nil)

	res, _ := getReviews(t, ts, "?sentiment=angry")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", res.StatusCode)
	}
}

func TestListReviews_ETag(t *testing.T) {
	ts := newTestServer(t, nil)
	postReview(t, ts, "супер")

	res, _ := getReviews(t, ts, "")
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag header")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/reviews", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("status %d, want 304", res2.StatusCode)
	}
}

func TestCreateReview_RateLimited(t *testing.T) {
	ts := newTestServer(t, rate.NewLimiter(rate.Limit(1), 1))

	res, _ := postReview(t, ts, "первый")
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("first insert: status %d", res.StatusCode)
	}
	res, _ = postReview(t, ts, "второй")
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("second insert: status %d, want 429", res.StatusCode)
	}
}
