// Package cli implements the interactive terminal study session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/benkyo-app/benkyo/internal/flashcard"
	"github.com/benkyo-app/benkyo/internal/srs"
)

//go:generate mockgen -source=study_session.go -destination=../mocks/cli/mock_study.go -package=mock_cli

// StudyService is the flashcard surface the interactive commands call into.
type StudyService interface {
	GetNextCard(ctx context.Context, userID string, contentType srs.ContentType) (*flashcard.CardReview, error)
	RecordReview(ctx context.Context, userID string, contentType srs.ContentType, contentID int64, outcome srs.Outcome) (*flashcard.CardReview, error)
	GetStats(ctx context.Context, userID string) (flashcard.Stats, error)
	GetReviewLogs(ctx context.Context, userID string) ([]flashcard.ReviewLog, error)
}

type Session interface {
	Session(context context.Context) error
}

var errEnd = errors.New("end")

// StudySessionCLI runs an interactive review loop over the user's due cards.
type StudySessionCLI struct {
	service     StudyService
	userID      string
	contentType srs.ContentType
	input       *bufio.Reader
	output      io.Writer
	bold        *color.Color
	success     *color.Color
	failure     *color.Color
	reviewed    int
	failed      int
}

// NewStudySessionCLI creates a new interactive study session. contentType may
// be empty to review cards of every content type.
func NewStudySessionCLI(service StudyService, userID string, contentType srs.ContentType) *StudySessionCLI {
	return newStudySessionCLI(service, userID, contentType, os.Stdin, os.Stdout)
}

func newStudySessionCLI(service StudyService, userID string, contentType srs.ContentType, input io.Reader, output io.Writer) *StudySessionCLI {
	return &StudySessionCLI{
		service:     service,
		userID:      userID,
		contentType: contentType,
		input:       bufio.NewReader(input),
		output:      output,
		bold:        color.New(color.Bold),
		success:     color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
	}
}

// Run drives the session loop until the cards run out, the user quits, or an
// interrupt signal arrives.
func (s *StudySessionCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.output, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

func (s *StudySessionCLI) Session(ctx context.Context) error {
	card, err := s.service.GetNextCard(ctx, s.userID, s.contentType)
	if err != nil {
		return fmt.Errorf("service.GetNextCard() > %w", err)
	}
	if card == nil {
		fmt.Fprintln(s.output, "No more cards due for review!")
		s.printSummary()
		return errEnd
	}

	_, _ = s.bold.Fprintf(s.output, "%s #%d", card.ContentType, card.ContentID)
	fmt.Fprintf(s.output, " (repetition %d, ease %.2f)\n", card.Repetitions, card.EaseFactor)
	fmt.Fprint(s.output, "How did it go? [a]gain / [h]ard / [g]ood / [e]asy / [q]uit: ")

	line, err := s.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.printSummary()
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	outcome, err := parseOutcomeInput(line)
	if errors.Is(err, errEnd) {
		s.printSummary()
		return errEnd
	}
	if err != nil {
		_, _ = s.failure.Fprintf(s.output, "%v\n", err)
		return nil
	}

	updated, err := s.service.RecordReview(ctx, s.userID, card.ContentType, card.ContentID, outcome)
	if err != nil {
		return fmt.Errorf("service.RecordReview() > %w", err)
	}

	s.reviewed++
	if outcome.Quality() < 3 {
		s.failed++
		_, _ = s.failure.Fprintf(s.output, "Back to the start. Next review in %d days (ease %.2f)\n", updated.IntervalDays, updated.EaseFactor)
	} else {
		_, _ = s.success.Fprintf(s.output, "Next review in %d days (ease %.2f)\n", updated.IntervalDays, updated.EaseFactor)
	}
	fmt.Fprintln(s.output)
	return nil
}

func (s *StudySessionCLI) printSummary() {
	fmt.Fprintf(s.output, "\nSession finished: %d reviewed, %d failed\n", s.reviewed, s.failed)
}

func parseOutcomeInput(line string) (srs.Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "a", "again":
		return srs.OutcomeAgain, nil
	case "h", "hard":
		return srs.OutcomeHard, nil
	case "g", "good":
		return srs.OutcomeGood, nil
	case "e", "easy":
		return srs.OutcomeEasy, nil
	case "q", "quit", "exit":
		return "", errEnd
	default:
		return "", fmt.Errorf("unknown answer %q: type a, h, g, e or q", strings.TrimSpace(line))
	}
}
