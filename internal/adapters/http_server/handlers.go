package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/stayer56/UCAR-sentiment-analysis/internal/app"
	"github.com/stayer56/UCAR-sentiment-analysis/internal/domain"
)

type Handlers struct {
	Svc *app.ReviewService

	// InsertLimiter throttles review creation; nil means unlimited.
	InsertLimiter *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.With(RateLimit(h.InsertLimiter)).Post("/reviews", h.createReview)
	s.mux.Get("/reviews", h.listReviews)
}

// createdAtFormat mirrors the wire contract: ISO-8601 with microseconds and
// no timezone designator (timestamps are always UTC).
const createdAtFormat = "2006-01-02T15:04:05.000000"

// reviewResponse fixes field names and order on the wire.
type reviewResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"created_at"`
}

func toResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Sentiment: r.Sentiment.String(),
		CreatedAt: r.CreatedAt.UTC().Format(createdAtFormat),
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with a text field")
		return
	}

	review, err := h.Svc.Create(r.Context(), req.Text)
	if err != nil {
		if domain.IsValidation(err) {
			writeProblem(w, http.StatusBadRequest, "Invalid Review", err.Error())
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to store review")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toResponse(review)); err != nil {
		log.Error().Err(err).Msg("failed to write createReview body")
	}
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	var filter *domain.Sentiment
	if raw := r.URL.Query().Get("sentiment"); raw != "" {
		s, err := domain.ParseSentiment(raw)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
			return
		}
		filter = &s
	}

	reviews, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "failed to list reviews")
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toResponse(rv))
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listReviews body")
	}
}
