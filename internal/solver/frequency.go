// internal/solver/frequency.go
//
// Letter-frequency heuristic used to rank candidates.
// The frequency table is derived fresh from the current corpus every time a
// ranking is requested: after each filter pass the candidate set shrinks, so
// frequencies from a prior state would mis-rank the survivors.

package solver

import "sort"

// FrequencyTable maps each letter a-z to its occurrence count across the
// corpus it was derived from.
type FrequencyTable [26]int

// Count returns the occurrence count for letter b ('a'..'z').
func (t FrequencyTable) Count(b byte) int {
	if b < 'a' || b > 'z' {
		return 0
	}
	return t[b-'a']
}

// LetterCount is one (letter, count) entry of a frequency report.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// LetterFrequency counts how many times each letter appears across all
// words in the current corpus.
func (s *Solver) LetterFrequency() FrequencyTable {
	var t FrequencyTable
	for _, w := range s.corpus {
		for i := 0; i < len(w); i++ {
			t[w[i]-'a']++
		}
	}
	return t
}

// LetterFrequencyAt counts letter occurrences at one position only.
func (s *Solver) LetterFrequencyAt(pos int) FrequencyTable {
	var t FrequencyTable
	if pos < 0 || pos >= s.length {
		return t
	}
	for _, w := range s.corpus {
		t[w[pos]-'a']++
	}
	return t
}

// LetterFrequencyScore is the sum of the corpus-wide frequency of each
// letter of word, repeats counted once per occurrence.
func (s *Solver) LetterFrequencyScore(word string) int {
	return wordScore(s.LetterFrequency(), word)
}

// BestLetters returns all letters that occur in the corpus, ordered by
// descending frequency (ties alphabetical).
func (s *Solver) BestLetters() []LetterCount {
	return topLetters(s.LetterFrequency())
}

// BestLetterPositions reports, for each guess position, the most frequent
// letter at that position with its count. Entries are zero-valued when the
// corpus is empty.
func (s *Solver) BestLetterPositions() []LetterCount {
	out := make([]LetterCount, s.length)
	for pos := 0; pos < s.length; pos++ {
		t := s.LetterFrequencyAt(pos)
		best, count := -1, 0
		for i, n := range t {
			if n > count {
				best, count = i, n
			}
		}
		if best >= 0 {
			out[pos] = LetterCount{Letter: string(rune('a' + best)), Count: count}
		}
	}
	return out
}

// rank re-sorts the corpus in place so the most promising candidate is
// first: more distinct letters wins, then higher summed letter frequency,
// then alphabetical so repeated calls are deterministic.
func (s *Solver) rank() {
	rankWords(s.corpus)
}

func rankWords(list []string) {
	var t FrequencyTable
	for _, w := range list {
		for i := 0; i < len(w); i++ {
			t[w[i]-'a']++
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		ua, ub := uniqueLetters(a), uniqueLetters(b)
		if ua != ub {
			return ua > ub
		}
		sa, sb := wordScore(t, a), wordScore(t, b)
		if sa != sb {
			return sa > sb
		}
		return a < b
	})
}

// uniqueLetters counts distinct letters in w.
func uniqueLetters(w string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(w); i++ {
		if !seen[w[i]-'a'] {
			seen[w[i]-'a'] = true
			n++
		}
	}
	return n
}

// wordScore sums the table frequency of each letter of w.
func wordScore(t FrequencyTable, w string) int {
	total := 0
	for i := 0; i < len(w); i++ {
		total += t.Count(w[i])
	}
	return total
}

func topLetters(t FrequencyTable) []LetterCount {
	var out []LetterCount
	for i, n := range t {
		if n > 0 {
			out = append(out, LetterCount{Letter: string(rune('a' + i)), Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}

// TopLetters converts an arbitrary frequency table into the same ordered
// report as BestLetters. Exposed for position-specific tables.
func TopLetters(t FrequencyTable) []LetterCount {
	return topLetters(t)
}
