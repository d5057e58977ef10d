// Package server exposes the flashcard service over JSON HTTP endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/benkyo-app/benkyo/internal/flashcard"
	"github.com/benkyo-app/benkyo/internal/srs"
)

//go:generate mockgen -source=flashcard_handler.go -destination=../mocks/server/mock_service.go -package=mock_server

// FlashcardService is the inbound contract the handlers call into.
type FlashcardService interface {
	RecordReview(ctx context.Context, userID string, contentType srs.ContentType, contentID int64, outcome srs.Outcome) (*flashcard.CardReview, error)
	GetDueCards(ctx context.Context, userID string, contentType srs.ContentType, limit int) ([]flashcard.CardReview, error)
	GetNextCard(ctx context.Context, userID string, contentType srs.ContentType) (*flashcard.CardReview, error)
	GetCard(ctx context.Context, userID string, contentType srs.ContentType, contentID int64) (*flashcard.CardReview, error)
	AddToStudySet(ctx context.Context, userID string, contentType srs.ContentType, contentIDs []int64) (int64, error)
	GetStats(ctx context.Context, userID string) (flashcard.Stats, error)
}

// FlashcardHandler serves the /api/v1/flashcards endpoints.
type FlashcardHandler struct {
	service FlashcardService
	logger  *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(service FlashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{service: service, logger: logger}
}

// RegisterRoutes mounts the flashcard endpoints on the mux.
func (h *FlashcardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/flashcards/next", h.handleNextCard)
	mux.HandleFunc("GET /api/v1/flashcards/due", h.handleDueCards)
	mux.HandleFunc("GET /api/v1/flashcards/card", h.handleGetCard)
	mux.HandleFunc("GET /api/v1/flashcards/stats", h.handleStats)
	mux.HandleFunc("POST /api/v1/flashcards/review", h.handleReview)
	mux.HandleFunc("POST /api/v1/flashcards", h.handleAdd)
}

// cardResponse is the JSON shape of a card review state.
type cardResponse struct {
	ContentType    string     `json:"content_type"`
	ContentID      int64      `json:"content_id"`
	EaseFactor     float64    `json:"ease_factor"`
	Interval       int        `json:"interval"`
	Repetitions    int        `json:"repetitions"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

func toCardResponse(card flashcard.CardReview) cardResponse {
	resp := cardResponse{
		ContentType:  string(card.ContentType),
		ContentID:    card.ContentID,
		EaseFactor:   card.EaseFactor,
		Interval:     card.IntervalDays,
		Repetitions:  card.Repetitions,
		NextReviewAt: card.NextReviewAt,
	}
	if card.LastReviewedAt.Valid {
		lastReviewedAt := card.LastReviewedAt.Time
		resp.LastReviewedAt = &lastReviewedAt
	}
	return resp
}

func (h *FlashcardHandler) handleNextCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	contentType, ok := h.optionalContentType(w, r)
	if !ok {
		return
	}

	card, err := h.service.GetNextCard(r.Context(), userID, contentType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if card == nil {
		h.writeSuccess(w, nil, "No cards due for review")
		return
	}
	h.writeSuccess(w, toCardResponse(*card), "")
}

func (h *FlashcardHandler) handleDueCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	contentType, ok := h.optionalContentType(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %q", raw))
			return
		}
		limit = parsed
	}

	cards, err := h.service.GetDueCards(r.Context(), userID, contentType, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	responses := make([]cardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, toCardResponse(card))
	}
	h.writeSuccess(w, responses, "")
}

func (h *FlashcardHandler) handleGetCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	contentType, contentID, ok := h.requiredCardQuery(w, r)
	if !ok {
		return
	}

	card, err := h.service.GetCard(r.Context(), userID, contentType, contentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSuccess(w, toCardResponse(*card), "")
}

func (h *FlashcardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSuccess(w, map[string]int{
		"due_now":     stats.DueNow,
		"due_soon":    stats.DueSoon,
		"total_cards": stats.TotalCards,
	}, "")
}

type reviewRequest struct {
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Result      string `json:"result"`
}

func (h *FlashcardHandler) handleReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contentType, err := srs.ParseContentType(req.ContentType)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	outcome, err := srs.ParseOutcome(req.Result)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.service.RecordReview(r.Context(), userID, contentType, req.ContentID, outcome)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSuccess(w, toCardResponse(*card), "")
}

type addRequest struct {
	ContentType string  `json:"content_type"`
	ContentIDs  []int64 `json:"content_ids"`
}

func (h *FlashcardHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contentType, err := srs.ParseContentType(req.ContentType)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.service.AddToStudySet(r.Context(), userID, contentType, req.ContentIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSuccess(w, map[string]int64{"added": added}, "")
}

func (h *FlashcardHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		h.writeErrorMessage(w, http.StatusBadRequest, "missing X-User-ID header")
		return "", false
	}
	return userID, true
}

func (h *FlashcardHandler) optionalContentType(w http.ResponseWriter, r *http.Request) (srs.ContentType, bool) {
	raw := r.URL.Query().Get("content_type")
	if raw == "" {
		return "", true
	}
	contentType, err := srs.ParseContentType(raw)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return contentType, true
}

func (h *FlashcardHandler) requiredCardQuery(w http.ResponseWriter, r *http.Request) (srs.ContentType, int64, bool) {
	contentType, err := srs.ParseContentType(r.URL.Query().Get("content_type"))
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return "", 0, false
	}
	contentID, err := strconv.ParseInt(r.URL.Query().Get("content_id"), 10, 64)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid content_id")
		return "", 0, false
	}
	return contentType, contentID, true
}

type responseEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *FlashcardHandler) writeSuccess(w http.ResponseWriter, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(responseEnvelope{Success: true, Data: data, Message: message}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *FlashcardHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, flashcard.ErrInvalidInput):
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, flashcard.ErrNotFound):
		h.writeErrorMessage(w, http.StatusNotFound, "card not found")
	default:
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *FlashcardHandler) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(responseEnvelope{Success: false, Error: message}); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
