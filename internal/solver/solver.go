// internal/solver/solver.go
//
// Core constraint-solver engine for a single solving session.
// Responsibilities:
//   - Own the candidate corpus and the append-only guess history.
//   - Narrow the corpus from feedback (ApplyFeedback).
//   - Propose the next guess from the letter-frequency ranking (BestGuess).
//
// Notes:
//   - A Solver is owned by one logical caller; concurrent sessions each
//     construct their own instance (construction is a copy plus a sort).
//   - The corpus is never mutated in place: every filter pass produces a new
//     slice that replaces the old one, so the corpus only ever shrinks.
//   - Validation happens before any mutation; a rejected call leaves corpus
//     and history untouched.

package solver

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tgclark/wordle-solver/internal/feedback"
	"github.com/tgclark/wordle-solver/internal/words"
)

// GuessRecord is an immutable pair of a guessed word and the feedback it
// received.
type GuessRecord struct {
	Guess    string            `json:"guess"`
	Feedback feedback.Feedback `json:"feedback"`
}

// Solver holds the current candidate corpus and the guess history.
type Solver struct {
	corpus   []string
	original []string // corpus as of construction/reset, for SecondGuess
	history  []GuessRecord
	start    string // starting-guess override, used only before any feedback
	length   int
	log      zerolog.Logger
}

// New constructs a Solver over a copy of the given corpus. The corpus is
// normalized (lowercased, deduplicated, wrong-length entries dropped) and
// ranked. The starting-guess override is startingWord if non-empty, else the
// top-ranked candidate, else none (empty corpus).
func New(corpus []string, startingWord string, logger zerolog.Logger) *Solver {
	s := &Solver{
		corpus: words.Normalize(corpus),
		length: words.WordLength,
		log:    logger,
	}
	s.original = append([]string(nil), s.corpus...)
	s.rank()
	if startingWord != "" {
		s.start = strings.ToLower(strings.TrimSpace(startingWord))
	} else if len(s.corpus) > 0 {
		s.start = s.corpus[0]
	}
	return s
}

// Reset replaces the corpus with a fresh copy of the given list and clears
// the history. The starting-guess override is left untouched.
func (s *Solver) Reset(corpus []string) *Solver {
	s.corpus = words.Normalize(corpus)
	s.original = append([]string(nil), s.corpus...)
	s.history = nil
	s.rank()
	return s
}

// BestGuess returns the next proposed guess. Before any feedback has been
// recorded it returns the starting-guess override. Afterwards it re-ranks
// the corpus and returns the top candidate. ok is false when no candidate
// remains consistent with the recorded feedback (or the override was never
// set because the corpus was empty at construction).
func (s *Solver) BestGuess() (string, bool) {
	if len(s.history) == 0 {
		return s.start, s.start != ""
	}
	s.rank()
	if len(s.corpus) == 0 {
		return "", false
	}
	return s.corpus[0], true
}

// ApplyFeedback appends (guess, fb) to the history and filters the corpus
// down to the words consistent with this new piece of feedback. Filtering is
// incremental: it compounds on the current corpus rather than replaying the
// whole history.
//
// Returns feedback.ErrInvalidInput (wrapped) if the guess or feedback has
// the wrong length or the feedback contains an unknown code; in that case
// corpus and history are unchanged.
func (s *Solver) ApplyFeedback(guess string, fb feedback.Feedback) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != s.length {
		return fmt.Errorf("%w: guess %q must be %d letters", feedback.ErrInvalidInput, guess, s.length)
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return fmt.Errorf("%w: guess %q must be letters a-z", feedback.ErrInvalidInput, guess)
		}
	}
	if len(fb) != s.length {
		return fmt.Errorf("%w: feedback length %d, want %d", feedback.ErrInvalidInput, len(fb), s.length)
	}
	for _, c := range fb {
		if c != feedback.Hit && c != feedback.Present && c != feedback.Absent {
			return fmt.Errorf("%w: unknown feedback code %d", feedback.ErrInvalidInput, c)
		}
	}

	s.history = append(s.history, GuessRecord{Guess: guess, Feedback: fb})

	before := len(s.corpus)

	// Letters appearing more than once in the guess. An Absent on a
	// duplicated letter only rules out that position, not the whole word:
	// another occurrence may still be in the target.
	var letterCount [26]int
	for i := 0; i < s.length; i++ {
		letterCount[guess[i]-'a']++
	}

	// Globally-excluded letters: Absent positions whose letter is not
	// duplicated in the guess.
	var excluded [26]bool
	for i, c := range fb {
		if c == feedback.Absent && letterCount[guess[i]-'a'] == 1 {
			excluded[guess[i]-'a'] = true
		}
	}
	s.corpus = filter(s.corpus, func(w string) bool {
		for i := 0; i < len(w); i++ {
			if excluded[w[i]-'a'] {
				return false
			}
		}
		return true
	})

	// Positional constraints, applied against the already-reduced set.
	for i, c := range fb {
		g := guess[i]
		switch c {
		case feedback.Hit:
			s.corpus = filter(s.corpus, func(w string) bool { return w[i] == g })
		case feedback.Present:
			s.corpus = filter(s.corpus, func(w string) bool {
				return w[i] != g && strings.IndexByte(w, g) >= 0
			})
		case feedback.Absent:
			s.corpus = filter(s.corpus, func(w string) bool { return w[i] != g })
		}
	}

	s.rank()

	s.log.Debug().
		Str("guess", guess).
		Str("feedback", fb.String()).
		Int("before", before).
		Int("after", len(s.corpus)).
		Msg("applied feedback")

	return nil
}

// ApplyFeedbackString parses fb from its wire encoding ({x,i,e}) and applies
// it. See ApplyFeedback.
func (s *Solver) ApplyFeedbackString(guess, fb string) error {
	parsed, err := feedback.Parse(fb, s.length)
	if err != nil {
		return err
	}
	return s.ApplyFeedback(guess, parsed)
}

// SecondGuess proposes a ranked word list for an information-maximizing
// follow-up guess, drawn from the construction-time corpus rather than the
// filtered one (the follow-up need not be a remaining candidate): words that
// repeat a previously-guessed letter at a position the prior guess did not
// score Hit are excluded. The solver's own corpus and history are not
// mutated.
func (s *Solver) SecondGuess() []string {
	out := filter(s.original, func(w string) bool {
		for _, rec := range s.history {
			for i, c := range rec.Feedback {
				if c != feedback.Hit && w[i] == rec.Guess[i] {
					return false
				}
			}
		}
		return true
	})
	rankWords(out)
	return out
}

// Candidates returns a copy of the current corpus in ranked order.
func (s *Solver) Candidates() []string {
	out := make([]string, len(s.corpus))
	copy(out, s.corpus)
	return out
}

// Remaining reports the current corpus size.
func (s *Solver) Remaining() int { return len(s.corpus) }

// History returns a copy of the guess history, in guess order.
func (s *Solver) History() []GuessRecord {
	out := make([]GuessRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Solved reports whether the most recent feedback was all-Hit.
func (s *Solver) Solved() bool {
	if len(s.history) == 0 {
		return false
	}
	return s.history[len(s.history)-1].Feedback.AllHit()
}

// filter retains the elements of in for which keep returns true, always
// allocating a new slice so prior corpus snapshots stay valid.
func filter(in []string, keep func(string) bool) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
