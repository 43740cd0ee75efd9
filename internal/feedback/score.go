// internal/feedback/score.go
//
// Scoring a guess against a known target. Used by the simulation driver and
// the play-assist endpoints; a live player already knows the real feedback.
//
// Two scorers are provided:
//   - Score: contains-anywhere semantics. A non-hit guess letter is marked
//     Present whenever the target contains it at any position, regardless of
//     how many times it has already been accounted for. The solver's filter
//     and the simulation driver are defined against these semantics.
//   - ScoreStrict: the classic two-pass algorithm, which caps Present marks
//     per letter at the count remaining in the target after hits.
//
// Example of the divergence: guess "speed" vs target "abide" marks both 'e's
// Present under Score, only one under ScoreStrict.

package feedback

import "strings"

// Score computes Feedback for guess against target using contains-anywhere
// semantics. Both words must have the same length; this is the caller's
// contract, enforced at the solver and HTTP boundaries.
func Score(guess, target string) Feedback {
	fb := make(Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == target[i]:
			fb[i] = Hit
		case strings.IndexByte(target, guess[i]) >= 0:
			fb[i] = Present
		default:
			fb[i] = Absent
		}
	}
	return fb
}

// ScoreStrict implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) target letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement; otherwise mark Absent.
func ScoreStrict(guess, target string) Feedback {
	n := len(guess)
	fb := make(Feedback, n)

	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			fb[i] = Hit
		} else if j := idx(target[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if fb[i] == Hit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			fb[i] = Present
			counts[j]--
		} else {
			fb[i] = Absent
		}
	}
	return fb
}

// idx maps a lowercase ASCII letter to 0..25, or -1 if out of range.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
