// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the solver corpus from an environment-provided file or fall back
//     to the embedded default list.
//   - Normalize entries: lowercase, trimmed, exactly WordLength alphabetic
//     letters, duplicates dropped while preserving order.
//   - Supply utility functions like Corpus, IsWord, and Stats.
//
// Initialization behavior (Init):
//   1. If SOLVER_CORPUS_FILE is set, load words from that file.
//   2. Otherwise, fall back to the embedded default corpus (assets package).
//
// Environment variables:
//   SOLVER_CORPUS_FILE=/path/to/corpus.txt
//
// Constraints:
//   • Words must be WordLength alphabetic letters (a–z).
//   • The loaded list is never mutated; Corpus() hands out fresh copies so
//     each solver instance owns its slice.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/tgclark/wordle-solver/assets"
)

// WordLength is the fixed guess length the solver operates on.
const WordLength = 5

var (
	initOnce   sync.Once
	corpus     []string            // normalized, deduplicated word list
	corpusSet  map[string]struct{} // membership lookups
	initialErr error
)

// Init loads the corpus exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("SOLVER_CORPUS_FILE"); path != "" {
			var err error
			list, err = LoadFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			embedded, err := assets.CorpusList()
			if err != nil {
				initialErr = err
				return
			}
			list = Normalize(embedded)
		}

		corpus = list
		corpusSet = toSet(list)

		if len(corpus) == 0 {
			initialErr = errors.New("words: corpus is empty")
		}
	})
	return initialErr
}

// LoadFile loads one word per line from a file and normalizes the result.
// Used by Init and by CLI flags that point at an alternate corpus.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	return Normalize(raw), sc.Err()
}

// Normalize lowercases and trims each entry, keeps only valid WordLength
// alphabetic words, and drops duplicates while preserving first-seen order.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != WordLength || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Corpus returns a fresh copy of the loaded word list. Callers own the
// returned slice; the backing list is never exposed.
func Corpus() []string {
	out := make([]string, len(corpus))
	copy(out, corpus)
	return out
}

// IsWord reports whether w is in the loaded corpus.
func IsWord(w string) bool {
	_, ok := corpusSet[strings.ToLower(w)]
	return ok
}

// Stats returns the number of loaded words.
func Stats() int {
	return len(corpus)
}
