// Package srs implements the SM-2 derived spaced-repetition scheduler.
//
// The scheduler is a pure function over a card's scheduling state and a review
// outcome. All tuning parameters are passed in through Config so callers can
// vary them per deployment and tests can exercise boundary values.
package srs

import (
	"math"
	"time"
)

// Config holds the scheduler tuning parameters.
type Config struct {
	// InitialInterval is the interval in days assigned when a card is first
	// added to a study set.
	InitialInterval int `mapstructure:"initial_interval"`
	// InitialEaseFactor is the ease factor for a brand-new card.
	InitialEaseFactor float64 `mapstructure:"initial_ease_factor"`
	// MinEaseFactor is the lower bound an ease factor may never fall below.
	MinEaseFactor float64 `mapstructure:"min_ease_factor"`
	// MaxInterval caps the interval in days.
	MaxInterval int `mapstructure:"max_interval"`
	// EasyBonus multiplies the interval when a review is graded easy.
	EasyBonus float64 `mapstructure:"easy_bonus"`
	// IntervalModifier scales every computed interval.
	IntervalModifier float64 `mapstructure:"interval_modifier"`
}

// DefaultConfig returns the standard SM-2 tuning.
func DefaultConfig() Config {
	return Config{
		InitialInterval:   1,
		InitialEaseFactor: 2.5,
		MinEaseFactor:     1.3,
		MaxInterval:       365,
		EasyBonus:         1.3,
		IntervalModifier:  1.0,
	}
}

// State is the scheduling state of a card before a review.
type State struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
}

// NewState returns the state of a card that has never been reviewed.
func NewState(cfg Config) State {
	return State{
		EaseFactor:   cfg.InitialEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
	}
}

// Schedule is the result of applying a review outcome to a card.
type Schedule struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReviewAt time.Time
}

// NextReview applies a review outcome to the current state and returns the new
// schedule. Quality below 3 resets the repetition streak and schedules the card
// for the next day; successful recalls grow the interval by the ease factor.
//
// Day arithmetic is calendar-day based in UTC: next_review_at is now (normalized
// to UTC) plus the interval in days via AddDate, so DST shifts in the caller's
// local zone cannot change the day count.
func NextReview(state State, outcome Outcome, now time.Time, cfg Config) Schedule {
	easeFactor := state.EaseFactor
	interval := state.IntervalDays
	repetitions := state.Repetitions

	quality := outcome.Quality()

	if quality < 3 {
		// Failed recall: reset the streak and review again tomorrow.
		repetitions = 0
		interval = 1

		// Only a complete failure lowers the ease factor.
		if outcome == OutcomeAgain {
			easeFactor = math.Max(cfg.MinEaseFactor, easeFactor-0.2)
		}
	} else {
		switch repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = roundHalfAway(float64(interval) * easeFactor * cfg.IntervalModifier)
		}

		repetitions++

		// Standard SM-2 ease adjustment. Quality 4-5 rewards, quality 3 penalizes.
		q := float64(quality)
		easeFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)

		if outcome == OutcomeEasy {
			interval = roundHalfAway(float64(interval) * cfg.EasyBonus)
		}
	}

	easeFactor = math.Max(cfg.MinEaseFactor, easeFactor)
	if interval > cfg.MaxInterval {
		interval = cfg.MaxInterval
	}

	return Schedule{
		EaseFactor:   easeFactor,
		IntervalDays: interval,
		Repetitions:  repetitions,
		NextReviewAt: now.UTC().AddDate(0, 0, interval),
	}
}

// roundHalfAway rounds to the nearest integer, halves away from zero.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}
