// Package flashcard provides the card review domain model, its repository, and
// the service that applies the spaced-repetition scheduler to review outcomes.
package flashcard

import (
	"database/sql"
	"time"

	"github.com/benkyo-app/benkyo/internal/srs"
)

// CardKey identifies a card review state: one per user, content type and item.
type CardKey struct {
	UserID      string
	ContentType srs.ContentType
	ContentID   int64
}

// CardReview is the scheduling state of a single content item in a user's
// study set.
type CardReview struct {
	ID             int64           `db:"id"`
	UserID         string          `db:"user_id"`
	ContentType    srs.ContentType `db:"content_type"`
	ContentID      int64           `db:"content_id"`
	EaseFactor     float64         `db:"ease_factor"`
	IntervalDays   int             `db:"interval_days"`
	Repetitions    int             `db:"repetitions"`
	NextReviewAt   time.Time       `db:"next_review_at"`
	LastReviewedAt sql.NullTime    `db:"last_reviewed_at"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Key returns the card's identity triple.
func (c CardReview) Key() CardKey {
	return CardKey{UserID: c.UserID, ContentType: c.ContentType, ContentID: c.ContentID}
}

// State returns the scheduling state the scheduler operates on.
func (c CardReview) State() srs.State {
	return srs.State{
		EaseFactor:   c.EaseFactor,
		IntervalDays: c.IntervalDays,
		Repetitions:  c.Repetitions,
	}
}

// Due reports whether the card is due at the given time.
func (c CardReview) Due(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// ReviewLog is an immutable record of a single review. A card's state is fully
// reproducible by folding its logs through the scheduler in order.
type ReviewLog struct {
	ID           int64           `db:"id"`
	UserID       string          `db:"user_id"`
	ContentType  srs.ContentType `db:"content_type"`
	ContentID    int64           `db:"content_id"`
	Outcome      srs.Outcome     `db:"outcome"`
	Quality      int             `db:"quality"`
	IntervalDays int             `db:"interval_days"`
	EaseFactor   float64         `db:"ease_factor"`
	ReviewedAt   time.Time       `db:"reviewed_at"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Stats summarizes a user's review workload.
type Stats struct {
	DueNow     int `db:"due_now"`
	DueSoon    int `db:"due_soon"`
	TotalCards int `db:"total_cards"`
}
