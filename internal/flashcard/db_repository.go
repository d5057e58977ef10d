package flashcard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/benkyo-app/benkyo/internal/database"
	"github.com/benkyo-app/benkyo/internal/srs"
)

// DBCardRepository implements Repository using MySQL.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// Find returns the card review state for the key, or ErrNotFound.
func (r *DBCardRepository) Find(ctx context.Context, key CardKey) (*CardReview, error) {
	var card CardReview
	err := r.db.GetContext(ctx, &card,
		"SELECT * FROM card_reviews WHERE user_id = ? AND content_type = ? AND content_id = ?",
		key.UserID, key.ContentType, key.ContentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %s/%s/%d: %w", key.UserID, key.ContentType, key.ContentID, ErrNotFound)
	}
	if err != nil {
		return nil, persistenceErr("db.GetContext(card_reviews)", err)
	}
	return &card, nil
}

// FindDue returns due cards for the user ordered by next_review_at ascending.
func (r *DBCardRepository) FindDue(ctx context.Context, userID string, contentType srs.ContentType, dueBefore time.Time, limit int) ([]CardReview, error) {
	query := "SELECT * FROM card_reviews WHERE user_id = ? AND next_review_at <= ?"
	args := []any{userID, dueBefore}
	if contentType != "" {
		query += " AND content_type = ?"
		args = append(args, contentType)
	}
	query += " ORDER BY next_review_at ASC, id ASC LIMIT ?"
	args = append(args, limit)

	cards := []CardReview{}
	if err := r.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, persistenceErr("db.SelectContext(due card_reviews)", err)
	}
	return cards, nil
}

// ApplyReview serializes concurrent reviews of the same card by locking its row
// (SELECT ... FOR UPDATE) for the duration of the read-compute-write cycle. The
// card upsert and the review log insert commit or roll back together.
func (r *DBCardRepository) ApplyReview(ctx context.Context, key CardKey, fn ApplyFunc) (*CardReview, error) {
	var persisted CardReview

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var existing *CardReview
		var current CardReview
		err := tx.GetContext(ctx, &current,
			"SELECT * FROM card_reviews WHERE user_id = ? AND content_type = ? AND content_id = ? FOR UPDATE",
			key.UserID, key.ContentType, key.ContentID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return persistenceErr("tx.GetContext(card_reviews for update)", err)
		}
		if err == nil {
			existing = &current
		}

		card, log := fn(existing)

		if existing == nil {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO card_reviews (user_id, content_type, content_id, ease_factor, interval_days, repetitions, next_review_at, last_reviewed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				card.UserID, card.ContentType, card.ContentID, card.EaseFactor,
				card.IntervalDays, card.Repetitions, card.NextReviewAt, card.LastReviewedAt); err != nil {
				return persistenceErr("tx.ExecContext(insert card_review)", err)
			}
		} else {
			if _, err := tx.ExecContext(ctx,
				`UPDATE card_reviews SET ease_factor = ?, interval_days = ?, repetitions = ?, next_review_at = ?, last_reviewed_at = ?
				WHERE id = ?`,
				card.EaseFactor, card.IntervalDays, card.Repetitions,
				card.NextReviewAt, card.LastReviewedAt, existing.ID); err != nil {
				return persistenceErr("tx.ExecContext(update card_review)", err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO review_logs (user_id, content_type, content_id, outcome, quality, interval_days, ease_factor, reviewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			log.UserID, log.ContentType, log.ContentID, log.Outcome, log.Quality,
			log.IntervalDays, log.EaseFactor, log.ReviewedAt); err != nil {
			return persistenceErr("tx.ExecContext(insert review_log)", err)
		}

		// Read back the stored row so callers see exactly what was persisted.
		if err := tx.GetContext(ctx, &persisted,
			"SELECT * FROM card_reviews WHERE user_id = ? AND content_type = ? AND content_id = ?",
			key.UserID, key.ContentType, key.ContentID); err != nil {
			return persistenceErr("tx.GetContext(persisted card_review)", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPersistence) {
			return nil, err
		}
		return nil, persistenceErr("database.RunInTx(card_reviews)", err)
	}

	return &persisted, nil
}

// InsertIfAbsent inserts card review states in one statement, skipping keys
// that already exist via the unique (user_id, content_type, content_id) key.
func (r *DBCardRepository) InsertIfAbsent(ctx context.Context, cards []CardReview) (int64, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	placeholders := make([]string, 0, len(cards))
	args := make([]any, 0, len(cards)*7)
	for _, card := range cards {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?)")
		args = append(args, card.UserID, card.ContentType, card.ContentID,
			card.EaseFactor, card.IntervalDays, card.Repetitions, card.NextReviewAt)
	}

	query := `INSERT IGNORE INTO card_reviews (user_id, content_type, content_id, ease_factor, interval_days, repetitions, next_review_at)
		VALUES ` + strings.Join(placeholders, ", ")

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, persistenceErr("db.ExecContext(insert ignore card_reviews)", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, persistenceErr("result.RowsAffected()", err)
	}
	return inserted, nil
}

// ListReviewLogs returns all review logs for the user, oldest first.
func (r *DBCardRepository) ListReviewLogs(ctx context.Context, userID string) ([]ReviewLog, error) {
	logs := []ReviewLog{}
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs WHERE user_id = ? ORDER BY reviewed_at ASC, id ASC",
		userID); err != nil {
		return nil, persistenceErr("db.SelectContext(review_logs)", err)
	}
	return logs, nil
}

// Stats counts due and total cards in a single aggregate query. A user with no
// cards gets all-zero counts, not an error.
func (r *DBCardRepository) Stats(ctx context.Context, userID string, now time.Time) (Stats, error) {
	var stats Stats
	err := r.db.GetContext(ctx, &stats,
		`SELECT
			COALESCE(SUM(next_review_at <= ?), 0) AS due_now,
			COALESCE(SUM(next_review_at > ? AND next_review_at <= ?), 0) AS due_soon,
			COUNT(*) AS total_cards
		FROM card_reviews WHERE user_id = ?`,
		now, now, now.Add(24*time.Hour), userID)
	if err != nil {
		return Stats{}, persistenceErr("db.GetContext(card_reviews stats)", err)
	}
	return stats, nil
}
