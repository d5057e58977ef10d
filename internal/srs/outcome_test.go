package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		input       string
		want        Outcome
		wantQuality int
		wantErr     bool
	}{
		{input: "again", want: OutcomeAgain, wantQuality: 0},
		{input: "hard", want: OutcomeHard, wantQuality: 2},
		{input: "good", want: OutcomeGood, wantQuality: 3},
		{input: "easy", want: OutcomeEasy, wantQuality: 5},
		{input: "perfect", wantErr: true},
		{input: "", wantErr: true},
		{input: "Good", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutcome(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantQuality, got.Quality())
		})
	}
}

func TestParseContentType(t *testing.T) {
	for _, ct := range ContentTypes {
		t.Run(string(ct), func(t *testing.T) {
			got, err := ParseContentType(string(ct))
			require.NoError(t, err)
			assert.Equal(t, ct, got)
		})
	}

	for _, input := range []string{"", "romaji", "Kanji", "vocab"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseContentType(input)
			assert.Error(t, err)
		})
	}
}
