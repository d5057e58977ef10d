package srs

import "fmt"

// Outcome is the user's self-graded result for a single review.
type Outcome string

const (
	OutcomeAgain Outcome = "again"
	OutcomeHard  Outcome = "hard"
	OutcomeGood  Outcome = "good"
	OutcomeEasy  Outcome = "easy"
)

// Outcomes lists all review outcomes, worst recall first.
var Outcomes = []Outcome{OutcomeAgain, OutcomeHard, OutcomeGood, OutcomeEasy}

// ParseOutcome converts a string into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown review outcome: %q", s)
	}
	return o, nil
}

// Valid reports whether the outcome is one of the four supported grades.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeAgain, OutcomeHard, OutcomeGood, OutcomeEasy:
		return true
	}
	return false
}

// Quality maps the outcome onto the SM-2 quality scale (0-5).
func (o Outcome) Quality() int {
	switch o {
	case OutcomeAgain:
		return 0
	case OutcomeHard:
		return 2
	case OutcomeGood:
		return 3
	case OutcomeEasy:
		return 5
	}
	return 0
}

func (o Outcome) String() string {
	return string(o)
}
