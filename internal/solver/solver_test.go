package solver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgclark/wordle-solver/internal/feedback"
)

func newTestSolver(corpus []string) *Solver {
	return New(corpus, "", zerolog.Nop())
}

func TestNewNormalizesCorpus(t *testing.T) {
	s := newTestSolver([]string{"Crane", "crane", "  slimy ", "toolong", "tiny", "cr4ne"})
	assert.ElementsMatch(t, []string{"crane", "slimy"}, s.Candidates())
}

func TestBestGuessEmptyCorpus(t *testing.T) {
	s := newTestSolver(nil)
	guess, ok := s.BestGuess()
	assert.False(t, ok)
	assert.Empty(t, guess)
}

func TestStartingWordOverride(t *testing.T) {
	s := New([]string{"frock", "glyph"}, "adieu", zerolog.Nop())
	guess, ok := s.BestGuess()
	require.True(t, ok)
	assert.Equal(t, "adieu", guess)

	// After feedback the override no longer applies.
	require.NoError(t, s.ApplyFeedbackString("adieu", "eeeee"))
	guess, ok = s.BestGuess()
	require.True(t, ok)
	assert.NotEqual(t, "adieu", guess)
}

func TestBestGuessIdempotent(t *testing.T) {
	s := newTestSolver([]string{"metro", "nitre", "retch", "tiger"})
	require.NoError(t, s.ApplyFeedbackString("tiger", "ixeii"))
	first, ok1 := s.BestGuess()
	second, ok2 := s.BestGuess()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestApplyFeedbackFiltering(t *testing.T) {
	// "later" scored "eexii": l and a globally excluded, t fixed at
	// position 2, e and r contained but not at positions 3 and 4.
	corpus := []string{
		"metro", "retch", "nitre", // consistent
		"later", "alert", // contain l/a
		"enter", "otter", // e at position 3
		"tiger", // no t at position 2
		"theme", // no r
	}
	s := newTestSolver(corpus)
	require.NoError(t, s.ApplyFeedbackString("later", "eexii"))
	assert.ElementsMatch(t, []string{"metro", "retch", "nitre"}, s.Candidates())

	guess, ok := s.BestGuess()
	require.True(t, ok)
	assert.Equal(t, "metro", guess) // 5 distinct letters, frequency tie broken alphabetically
}

func TestApplyFeedbackDuplicateLetters(t *testing.T) {
	// "melee" with feedback "eieee": the absent 'e's are duplicated in the
	// guess, so 'e' is not globally excluded; m and l are.
	corpus := []string{"edict", "crepe", "sheet", "melon", "beast"}
	s := newTestSolver(corpus)
	require.NoError(t, s.ApplyFeedbackString("melee", "eieee"))
	assert.Equal(t, []string{"edict"}, s.Candidates())
}

func TestApplyFeedbackMonotonicShrink(t *testing.T) {
	s := newTestSolver([]string{"metro", "retch", "nitre", "tiger", "theme"})
	prev := s.Remaining()
	for _, round := range []struct{ guess, fb string }{
		{"tiger", "ixeii"},
		{"nitre", "xxxxx"},
	} {
		require.NoError(t, s.ApplyFeedbackString(round.guess, round.fb))
		assert.LessOrEqual(t, s.Remaining(), prev)
		prev = s.Remaining()
	}
}

func TestApplyFeedbackInvalidInput(t *testing.T) {
	corpus := []string{"metro", "nitre"}
	s := newTestSolver(corpus)
	before := s.Candidates()

	tests := []struct {
		name, guess, fb string
	}{
		{"short guess", "late", "eexii"},
		{"long guess", "slates", "eexii"},
		{"non-letter guess", "lat3r", "eexii"},
		{"short feedback", "later", "eexi"},
		{"bad feedback code", "later", "eexiz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ApplyFeedbackString(tt.guess, tt.fb)
			require.Error(t, err)
			assert.ErrorIs(t, err, feedback.ErrInvalidInput)
			assert.Equal(t, before, s.Candidates())
			assert.Empty(t, s.History())
		})
	}
}

func TestApplyFeedbackRejectsUnknownCode(t *testing.T) {
	s := newTestSolver([]string{"metro"})
	err := s.ApplyFeedback("later", feedback.Feedback{feedback.Hit, feedback.Hit, feedback.Hit, feedback.Hit, feedback.Code(9)})
	require.Error(t, err)
	assert.ErrorIs(t, err, feedback.ErrInvalidInput)
}

func TestIncrementalEqualsReplay(t *testing.T) {
	corpus := []string{
		"metro", "retch", "nitre", "tiger", "theme",
		"crane", "slimy", "moist", "pride", "shard",
	}
	target := "nitre"

	incremental := newTestSolver(corpus)
	var history []GuessRecord
	for i := 0; i < 10; i++ {
		guess, ok := incremental.BestGuess()
		require.True(t, ok)
		fb := feedback.Score(guess, target)
		if fb.AllHit() {
			break
		}
		require.NoError(t, incremental.ApplyFeedback(guess, fb))
		history = append(history, GuessRecord{Guess: guess, Feedback: fb})
	}

	replayed := newTestSolver(corpus)
	for _, rec := range history {
		require.NoError(t, replayed.ApplyFeedback(rec.Guess, rec.Feedback))
	}
	assert.Equal(t, replayed.Candidates(), incremental.Candidates())
}

func TestHistoryAppendOnly(t *testing.T) {
	s := newTestSolver([]string{"metro", "nitre", "retch"})
	require.NoError(t, s.ApplyFeedbackString("metro", "eeeee"))
	require.NoError(t, s.ApplyFeedbackString("nitre", "xxxxx"))

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "metro", h[0].Guess)
	assert.Equal(t, "nitre", h[1].Guess)
	assert.True(t, s.Solved())

	// Mutating the returned slice must not affect the solver.
	h[0].Guess = "bogus"
	assert.Equal(t, "metro", s.History()[0].Guess)
}

func TestReset(t *testing.T) {
	s := New([]string{"metro", "nitre"}, "adieu", zerolog.Nop())
	require.NoError(t, s.ApplyFeedbackString("metro", "eeeee"))
	require.NotEmpty(t, s.History())

	s.Reset([]string{"crane", "slimy"})
	assert.Empty(t, s.History())
	assert.ElementsMatch(t, []string{"crane", "slimy"}, s.Candidates())

	// Override survives reset.
	guess, ok := s.BestGuess()
	require.True(t, ok)
	assert.Equal(t, "adieu", guess)
}

func TestSecondGuess(t *testing.T) {
	corpus := []string{
		"metro", "retch", "nitre", "later", "alert", "enter", "otter", "tiger", "theme",
	}
	s := newTestSolver(corpus)
	require.NoError(t, s.ApplyFeedbackString("later", "eexii"))

	second := s.SecondGuess()
	// Drawn from the original corpus; excluded words share a guessed letter
	// at a non-Hit position: "later" itself (all of them), "enter" and
	// "otter" (e at 3, r at 4), "tiger" (r at 4).
	assert.ElementsMatch(t, []string{"metro", "retch", "nitre", "alert", "theme"}, second)

	// The call must not disturb solver state.
	assert.ElementsMatch(t, []string{"metro", "retch", "nitre"}, s.Candidates())
	assert.Len(t, s.History(), 1)
}

func TestLetterFrequency(t *testing.T) {
	s := newTestSolver([]string{"metro", "nitre"})
	table := s.LetterFrequency()
	assert.Equal(t, 2, table.Count('t'))
	assert.Equal(t, 2, table.Count('e'))
	assert.Equal(t, 2, table.Count('r'))
	assert.Equal(t, 1, table.Count('m'))
	assert.Equal(t, 0, table.Count('z'))

	at := s.LetterFrequencyAt(0)
	assert.Equal(t, 1, at.Count('m'))
	assert.Equal(t, 1, at.Count('n'))
	assert.Equal(t, 0, at.Count('t'))
}

func TestLetterFrequencyScore(t *testing.T) {
	s := newTestSolver([]string{"metro", "nitre"})
	// m1 e2 t2 r2 o1 n1 i1; metro = 1+2+2+2+1 = 8
	assert.Equal(t, 8, s.LetterFrequencyScore("metro"))
}

func TestBestLetters(t *testing.T) {
	s := newTestSolver([]string{"metro", "nitre"})
	letters := s.BestLetters()
	require.NotEmpty(t, letters)
	// e, r, t all appear twice; alphabetical tie-break puts e first.
	assert.Equal(t, LetterCount{Letter: "e", Count: 2}, letters[0])
}

func TestBestLetterPositions(t *testing.T) {
	s := newTestSolver([]string{"metro", "metal", "merge"})
	positions := s.BestLetterPositions()
	require.Len(t, positions, 5)
	assert.Equal(t, LetterCount{Letter: "m", Count: 3}, positions[0])
	assert.Equal(t, LetterCount{Letter: "e", Count: 3}, positions[1])
}

func TestRankingPrefersDistinctLetters(t *testing.T) {
	// "otter" repeats t; "metro" has five distinct letters and must rank
	// above it regardless of frequency totals.
	s := newTestSolver([]string{"otter", "metro"})
	guess, ok := s.BestGuess()
	require.True(t, ok)
	assert.Equal(t, "metro", guess)
}
