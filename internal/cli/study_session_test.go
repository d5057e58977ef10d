package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benkyo-app/benkyo/internal/flashcard"
	mock_cli "github.com/benkyo-app/benkyo/internal/mocks/cli"
	"github.com/benkyo-app/benkyo/internal/srs"
)

var sessionNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func dueCard() *flashcard.CardReview {
	return &flashcard.CardReview{
		UserID:       "user-1",
		ContentType:  srs.ContentTypeVocabulary,
		ContentID:    42,
		EaseFactor:   2.5,
		IntervalDays: 1,
		Repetitions:  1,
		NextReviewAt: sessionNow,
	}
}

func TestStudySessionCLI_Session(t *testing.T) {
	t.Run("good answer records the review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(dueCard(), nil)
		service.EXPECT().
			RecordReview(gomock.Any(), "user-1", srs.ContentTypeVocabulary, int64(42), srs.OutcomeGood).
			Return(&flashcard.CardReview{
				ContentType:  srs.ContentTypeVocabulary,
				ContentID:    42,
				EaseFactor:   2.36,
				IntervalDays: 6,
				Repetitions:  2,
			}, nil)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("good\n"), output)

		err := session.Session(context.Background())
		require.NoError(t, err)
		assert.Contains(t, output.String(), "vocabulary #42")
		assert.Contains(t, output.String(), "Next review in 6 days")
		assert.Equal(t, 1, session.reviewed)
		assert.Equal(t, 0, session.failed)
	})

	t.Run("again answer counts as failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(dueCard(), nil)
		service.EXPECT().
			RecordReview(gomock.Any(), "user-1", srs.ContentTypeVocabulary, int64(42), srs.OutcomeAgain).
			Return(&flashcard.CardReview{
				ContentType:  srs.ContentTypeVocabulary,
				ContentID:    42,
				EaseFactor:   2.3,
				IntervalDays: 1,
				Repetitions:  0,
			}, nil)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("a\n"), output)

		err := session.Session(context.Background())
		require.NoError(t, err)
		assert.Contains(t, output.String(), "Back to the start")
		assert.Equal(t, 1, session.failed)
	})

	t.Run("quit ends the session with a summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(dueCard(), nil)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("q\n"), output)

		err := session.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "Session finished: 0 reviewed, 0 failed")
	})

	t.Run("unknown answer retries without recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(dueCard(), nil)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("perfect\n"), output)

		err := session.Session(context.Background())
		require.NoError(t, err)
		assert.Contains(t, output.String(), "unknown answer")
	})

	t.Run("no cards due ends the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentTypeKanji).
			Return(nil, nil)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", srs.ContentTypeKanji, strings.NewReader(""), output)

		err := session.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "No more cards due for review!")
	})

	t.Run("record failure surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(dueCard(), nil)
		service.EXPECT().
			RecordReview(gomock.Any(), "user-1", srs.ContentTypeVocabulary, int64(42), srs.OutcomeGood).
			Return(nil, errors.New("db is down"))

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("g\n"), output)

		err := session.Session(context.Background())
		assert.ErrorContains(t, err, "db is down")
	})
}

func TestStudySessionCLI_Run(t *testing.T) {
	t.Run("loops until the cards run out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		gomock.InOrder(
			service.EXPECT().
				GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
				Return(dueCard(), nil),
			service.EXPECT().
				RecordReview(gomock.Any(), "user-1", srs.ContentTypeVocabulary, int64(42), srs.OutcomeGood).
				Return(dueCard(), nil),
			service.EXPECT().
				GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
				Return(nil, nil),
		)

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader("good\n"), output)

		err := session.Run(context.Background(), session)
		require.NoError(t, err)
		assert.Contains(t, output.String(), "Session finished: 1 reviewed, 0 failed")
	})

	t.Run("session errors stop the loop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mock_cli.NewMockStudyService(ctrl)
		service.EXPECT().
			GetNextCard(gomock.Any(), "user-1", srs.ContentType("")).
			Return(nil, errors.New("db is down"))

		output := &bytes.Buffer{}
		session := newStudySessionCLI(service, "user-1", "", strings.NewReader(""), output)

		err := session.Run(context.Background(), session)
		assert.ErrorContains(t, err, "db is down")
	})
}

func TestParseOutcomeInput(t *testing.T) {
	tests := []struct {
		input   string
		want    srs.Outcome
		wantErr bool
	}{
		{input: "a\n", want: srs.OutcomeAgain},
		{input: "again\n", want: srs.OutcomeAgain},
		{input: "h\n", want: srs.OutcomeHard},
		{input: "G\n", want: srs.OutcomeGood},
		{input: "  easy  \n", want: srs.OutcomeEasy},
		{input: "perfect\n", wantErr: true},
		{input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			got, err := parseOutcomeInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("quit", func(t *testing.T) {
		_, err := parseOutcomeInput("q\n")
		assert.ErrorIs(t, err, errEnd)
	})
}
