package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Feedback
		wantErr bool
	}{
		{name: "all hit", in: "xxxxx", want: Feedback{Hit, Hit, Hit, Hit, Hit}},
		{name: "mixed", in: "eexii", want: Feedback{Absent, Absent, Hit, Present, Present}},
		{name: "uppercase accepted", in: "EeXiI", want: Feedback{Absent, Absent, Hit, Present, Present}},
		{name: "surrounding whitespace", in: "  xxxxx ", want: Feedback{Hit, Hit, Hit, Hit, Hit}},
		{name: "too short", in: "xxxx", wantErr: true},
		{name: "too long", in: "xxxxxx", wantErr: true},
		{name: "unknown code", in: "xxgxx", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, 5)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	fb, err := Parse("ixeix", 5)
	require.NoError(t, err)
	assert.Equal(t, "ixeix", fb.String())
}

func TestScoreSelfIsAllHit(t *testing.T) {
	for _, w := range []string{"crane", "speed", "abbey"} {
		assert.True(t, Score(w, w).AllHit(), w)
		assert.True(t, ScoreStrict(w, w).AllHit(), w)
	}
}

func TestScoreContainsAnywhere(t *testing.T) {
	tests := []struct {
		guess, target, want string
	}{
		{"later", "metro", "eexii"},
		{"crane", "crank", "xxxxe"},
		// Naive semantics: every non-hit 'e' and the trailing 'd' count as
		// Present because the target contains the letter somewhere.
		{"speed", "abide", "eeiii"},
		{"aaaaa", "bbbbb", "eeeee"},
	}
	for _, tt := range tests {
		got := Score(tt.guess, tt.target)
		assert.Equal(t, tt.want, got.String(), "%s vs %s", tt.guess, tt.target)
	}
}

func TestScoreStrictCapsDuplicates(t *testing.T) {
	// "abide" has a single 'e': only the first unmatched 'e' of "speed" may
	// be marked Present under strict scoring.
	assert.Equal(t, "eeiei", ScoreStrict("speed", "abide").String())
	// Agreement with the naive scorer when the guess has no repeats.
	assert.Equal(t, Score("later", "metro").String(), ScoreStrict("later", "metro").String())
}

func TestScoreIsPure(t *testing.T) {
	first := Score("later", "metro")
	second := Score("later", "metro")
	assert.Equal(t, first, second)
}

func TestAllHit(t *testing.T) {
	assert.False(t, Feedback{}.AllHit())
	assert.False(t, Feedback{Hit, Hit, Present, Hit, Hit}.AllHit())
	assert.True(t, Feedback{Hit, Hit, Hit, Hit, Hit}.AllHit())
}

func TestSquares(t *testing.T) {
	fb, err := Parse("xie", 3)
	require.NoError(t, err)
	assert.Equal(t, "🟩🟨⬜", fb.Squares())
}
