package flashcard

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/benkyo-app/benkyo/internal/srs"
)

const (
	// DefaultDueLimit is used when a caller asks for due cards without a limit.
	DefaultDueLimit = 20
	// MaxDueLimit caps a single due-card query.
	MaxDueLimit = 100
)

// Service coordinates the scheduler and the repository. It validates caller
// input, computes new scheduling state for review outcomes, and never retries
// persistence failures.
type Service struct {
	repo Repository
	cfg  srs.Config
	now  func() time.Time
}

// ServiceOption configures optional Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the service clock, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service using the given scheduler tuning.
func NewService(repo Repository, cfg srs.Config, opts ...ServiceOption) *Service {
	s := &Service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordReview applies a review outcome to the card identified by the key,
// creating the card at initialization defaults first when it does not exist
// yet. The read-compute-write cycle is atomic per card.
func (s *Service) RecordReview(ctx context.Context, userID string, contentType srs.ContentType, contentID int64, outcome srs.Outcome) (*CardReview, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("content type %q: %w", contentType, ErrInvalidInput)
	}
	if !outcome.Valid() {
		return nil, fmt.Errorf("outcome %q: %w", outcome, ErrInvalidInput)
	}

	now := s.now().UTC()
	key := CardKey{UserID: userID, ContentType: contentType, ContentID: contentID}

	card, err := s.repo.ApplyReview(ctx, key, func(existing *CardReview) (CardReview, ReviewLog) {
		state := srs.NewState(s.cfg)
		if existing != nil {
			state = existing.State()
		}

		schedule := srs.NextReview(state, outcome, now, s.cfg)

		updated := CardReview{
			UserID:         userID,
			ContentType:    contentType,
			ContentID:      contentID,
			EaseFactor:     schedule.EaseFactor,
			IntervalDays:   schedule.IntervalDays,
			Repetitions:    schedule.Repetitions,
			NextReviewAt:   schedule.NextReviewAt,
			LastReviewedAt: sql.NullTime{Time: now, Valid: true},
		}
		if existing != nil {
			updated.ID = existing.ID
		}

		log := ReviewLog{
			UserID:       userID,
			ContentType:  contentType,
			ContentID:    contentID,
			Outcome:      outcome,
			Quality:      outcome.Quality(),
			IntervalDays: schedule.IntervalDays,
			EaseFactor:   schedule.EaseFactor,
			ReviewedAt:   now,
		}
		return updated, log
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ApplyReview() > %w", err)
	}
	return card, nil
}

// GetDueCards returns cards due now, oldest due first. contentType may be
// empty to match all content types; limit <= 0 falls back to DefaultDueLimit.
func (s *Service) GetDueCards(ctx context.Context, userID string, contentType srs.ContentType, limit int) ([]CardReview, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if contentType != "" && !contentType.Valid() {
		return nil, fmt.Errorf("content type %q: %w", contentType, ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultDueLimit
	}
	if limit > MaxDueLimit {
		limit = MaxDueLimit
	}

	cards, err := s.repo.FindDue(ctx, userID, contentType, s.now().UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("repo.FindDue() > %w", err)
	}
	return cards, nil
}

// GetNextCard returns the single oldest-due card, or nil when nothing is due.
func (s *Service) GetNextCard(ctx context.Context, userID string, contentType srs.ContentType) (*CardReview, error) {
	cards, err := s.GetDueCards(ctx, userID, contentType, 1)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, nil
	}
	return &cards[0], nil
}

// GetCard returns the review state for a single card, or ErrNotFound.
func (s *Service) GetCard(ctx context.Context, userID string, contentType srs.ContentType, contentID int64) (*CardReview, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("content type %q: %w", contentType, ErrInvalidInput)
	}

	card, err := s.repo.Find(ctx, CardKey{UserID: userID, ContentType: contentType, ContentID: contentID})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// AddToStudySet registers content items as immediately due cards at
// initialization defaults. Items already in the study set keep their progress;
// the returned count is the number of newly added cards.
func (s *Service) AddToStudySet(ctx context.Context, userID string, contentType srs.ContentType, contentIDs []int64) (int64, error) {
	if err := validateUser(userID); err != nil {
		return 0, err
	}
	if !contentType.Valid() {
		return 0, fmt.Errorf("content type %q: %w", contentType, ErrInvalidInput)
	}
	if len(contentIDs) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	cards := make([]CardReview, 0, len(contentIDs))
	for _, contentID := range contentIDs {
		cards = append(cards, CardReview{
			UserID:       userID,
			ContentType:  contentType,
			ContentID:    contentID,
			EaseFactor:   s.cfg.InitialEaseFactor,
			IntervalDays: s.cfg.InitialInterval,
			Repetitions:  0,
			NextReviewAt: now,
		})
	}

	inserted, err := s.repo.InsertIfAbsent(ctx, cards)
	if err != nil {
		return 0, fmt.Errorf("repo.InsertIfAbsent() > %w", err)
	}
	return inserted, nil
}

// GetStats reports the user's current review workload. A brand-new user gets
// zero counts.
func (s *Service) GetStats(ctx context.Context, userID string) (Stats, error) {
	if err := validateUser(userID); err != nil {
		return Stats{}, err
	}

	stats, err := s.repo.Stats(ctx, userID, s.now().UTC())
	if err != nil {
		return Stats{}, fmt.Errorf("repo.Stats() > %w", err)
	}
	return stats, nil
}

// GetReviewLogs returns the user's full review history, oldest first.
func (s *Service) GetReviewLogs(ctx context.Context, userID string) ([]ReviewLog, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}

	logs, err := s.repo.ListReviewLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListReviewLogs() > %w", err)
	}
	return logs, nil
}

func validateUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is empty: %w", ErrInvalidInput)
	}
	return nil
}
