package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	cfg := DefaultConfig()

	tests := []struct {
		name            string
		state           State
		outcome         Outcome
		wantEase        float64
		wantInterval    int
		wantRepetitions int
	}{
		{
			name:            "again on a fresh card resets and penalizes ease",
			state:           NewState(cfg),
			outcome:         OutcomeAgain,
			wantEase:        2.3,
			wantInterval:    1,
			wantRepetitions: 0,
		},
		{
			name:            "hard on a fresh card resets without ease penalty",
			state:           NewState(cfg),
			outcome:         OutcomeHard,
			wantEase:        2.5,
			wantInterval:    1,
			wantRepetitions: 0,
		},
		{
			name:    "good on a fresh card starts the streak",
			state:   NewState(cfg),
			outcome: OutcomeGood,
			// quality 3: delta = 0.1 - 2*(0.08 + 2*0.02) = -0.14
			wantEase:        2.36,
			wantInterval:    1,
			wantRepetitions: 1,
		},
		{
			name:            "second consecutive good jumps to six days",
			state:           State{EaseFactor: 2.36, IntervalDays: 1, Repetitions: 1},
			outcome:         OutcomeGood,
			wantEase:        2.22,
			wantInterval:    6,
			wantRepetitions: 2,
		},
		{
			name:    "third review multiplies by ease factor",
			state:   State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2},
			outcome: OutcomeGood,
			// round(6 * 2.5) = 15
			wantEase:        2.36,
			wantInterval:    15,
			wantRepetitions: 3,
		},
		{
			name:    "easy applies the bonus after the ease multiplication",
			state:   State{EaseFactor: 2.46, IntervalDays: 6, Repetitions: 2},
			outcome: OutcomeEasy,
			// round(6 * 2.46) = 15, then round(15 * 1.3) = round(19.5) = 20
			wantEase:        2.56,
			wantInterval:    20,
			wantRepetitions: 3,
		},
		{
			name:    "easy on a fresh card gets the bonus on the first interval",
			state:   NewState(cfg),
			outcome: OutcomeEasy,
			// interval 1, then round(1 * 1.3) = 1
			wantEase:        2.6,
			wantInterval:    1,
			wantRepetitions: 1,
		},
		{
			name:            "again on a mature card resets interval to one day",
			state:           State{EaseFactor: 2.1, IntervalDays: 120, Repetitions: 7},
			outcome:         OutcomeAgain,
			wantEase:        1.9,
			wantInterval:    1,
			wantRepetitions: 0,
		},
		{
			name:            "ease factor never drops below the minimum",
			state:           State{EaseFactor: 1.35, IntervalDays: 3, Repetitions: 0},
			outcome:         OutcomeAgain,
			wantEase:        1.3,
			wantInterval:    1,
			wantRepetitions: 0,
		},
		{
			name:            "good at minimum ease stays clamped",
			state:           State{EaseFactor: 1.3, IntervalDays: 10, Repetitions: 4},
			outcome:         OutcomeGood,
			wantEase:        1.3,
			wantInterval:    13,
			wantRepetitions: 5,
		},
		{
			name:    "interval is capped at the maximum",
			state:   State{EaseFactor: 2.5, IntervalDays: 200, Repetitions: 9},
			outcome: OutcomeGood,
			// round(200 * 2.5) = 500 > 365
			wantEase:        2.36,
			wantInterval:    365,
			wantRepetitions: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReview(tt.state, tt.outcome, now, cfg)

			assert.InDelta(t, tt.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, tt.wantInterval, got.IntervalDays)
			assert.Equal(t, tt.wantRepetitions, got.Repetitions)
			assert.Equal(t, now.AddDate(0, 0, tt.wantInterval), got.NextReviewAt)
		})
	}
}

func TestNextReview_CustomConfig(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("interval modifier scales growth", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.IntervalModifier = 0.5

		got := NextReview(State{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 3}, OutcomeGood, now, cfg)
		// round(10 * 2.5 * 0.5) = 13 (12.5 rounds half away from zero)
		assert.Equal(t, 13, got.IntervalDays)
	})

	t.Run("easy bonus is configurable", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EasyBonus = 2.0

		got := NextReview(State{EaseFactor: 2.0, IntervalDays: 10, Repetitions: 3}, OutcomeEasy, now, cfg)
		// round(10 * 2.0) = 20, then round(20 * 2.0) = 40
		assert.Equal(t, 40, got.IntervalDays)
	})

	t.Run("lower max interval clamps earlier", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxInterval = 30

		got := NextReview(State{EaseFactor: 2.5, IntervalDays: 20, Repetitions: 5}, OutcomeGood, now, cfg)
		assert.Equal(t, 30, got.IntervalDays)
	})
}

func TestNextReview_NormalizesToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-08 23:00 EST crosses a DST transition within the next day.
	now := time.Date(2025, 3, 8, 23, 0, 0, 0, loc)
	got := NextReview(NewState(DefaultConfig()), OutcomeGood, now, DefaultConfig())

	assert.Equal(t, time.UTC, got.NextReviewAt.Location())
	assert.Equal(t, now.UTC().AddDate(0, 0, 1), got.NextReviewAt)
}

func TestNextReview_InvariantsHoldOverHistory(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	// A long, punishing history should never violate the clamps.
	history := []Outcome{
		OutcomeAgain, OutcomeAgain, OutcomeAgain, OutcomeGood, OutcomeAgain,
		OutcomeHard, OutcomeGood, OutcomeGood, OutcomeEasy, OutcomeEasy,
		OutcomeEasy, OutcomeEasy, OutcomeEasy, OutcomeAgain, OutcomeEasy,
		OutcomeEasy, OutcomeEasy, OutcomeEasy, OutcomeEasy, OutcomeEasy,
	}

	state := NewState(cfg)
	for i, outcome := range history {
		got := NextReview(state, outcome, now, cfg)

		require.GreaterOrEqual(t, got.EaseFactor, cfg.MinEaseFactor, "step %d", i)
		require.LessOrEqual(t, got.IntervalDays, cfg.MaxInterval, "step %d", i)
		require.GreaterOrEqual(t, got.Repetitions, 0, "step %d", i)
		require.False(t, got.NextReviewAt.Before(now), "step %d", i)

		if outcome.Quality() < 3 {
			require.Equal(t, 0, got.Repetitions, "step %d", i)
		}

		state = State{
			EaseFactor:   got.EaseFactor,
			IntervalDays: got.IntervalDays,
			Repetitions:  got.Repetitions,
		}
		now = got.NextReviewAt
	}
}

func TestNextReview_DeterministicForSameInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := State{EaseFactor: 2.2, IntervalDays: 14, Repetitions: 4}

	first := NextReview(state, OutcomeGood, now, DefaultConfig())
	second := NextReview(state, OutcomeGood, now, DefaultConfig())

	assert.Equal(t, first, second)
}
