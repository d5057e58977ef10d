package flashcard

import (
	"context"
	"time"

	"github.com/benkyo-app/benkyo/internal/srs"
)

//go:generate mockgen -source=repository.go -destination=../mocks/flashcard/mock_repository.go -package=mock_flashcard

// ApplyFunc computes the next card state and its review log from the existing
// state. existing is nil for a card that has never been registered.
type ApplyFunc func(existing *CardReview) (CardReview, ReviewLog)

// Repository defines persistence operations for card review states.
type Repository interface {
	// Find returns the card review state for the key, or ErrNotFound.
	Find(ctx context.Context, key CardKey) (*CardReview, error)
	// FindDue returns cards with next_review_at <= dueBefore, oldest due first,
	// truncated to limit. An empty contentType matches all content types.
	FindDue(ctx context.Context, userID string, contentType srs.ContentType, dueBefore time.Time, limit int) ([]CardReview, error)
	// ApplyReview atomically reads the current state for the key, applies fn,
	// upserts the resulting card and appends its review log in one transaction.
	// Concurrent reviews of the same card are serialized at the storage layer.
	ApplyReview(ctx context.Context, key CardKey, fn ApplyFunc) (*CardReview, error)
	// InsertIfAbsent inserts new card review states, silently skipping keys
	// that already exist. It returns the number of rows actually inserted.
	InsertIfAbsent(ctx context.Context, cards []CardReview) (int64, error)
	// ListReviewLogs returns all review logs for the user, oldest first.
	ListReviewLogs(ctx context.Context, userID string) ([]ReviewLog, error)
	// Stats counts the user's cards due now, due within the next 24 hours, and
	// in total.
	Stats(ctx context.Context, userID string, now time.Time) (Stats, error)
}
