// internal/feedback/render.go
//
// Terminal presentation of a Feedback. Pure formatting, no solver state.

package feedback

import "strings"

// Squares renders the Feedback as colored-square glyphs.
func (f Feedback) Squares() string {
	var b strings.Builder
	for _, c := range f {
		switch c {
		case Hit:
			b.WriteString("🟩")
		case Present:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

// ColoredWord displays word with ANSI-colored backgrounds based on the
// feedback, one letter per tile. Words of the wrong length are returned
// unchanged.
func (f Feedback) ColoredWord(word string) string {
	if len(word) != len(f) {
		return word
	}

	const (
		reset    = "\033[0m"
		grayBg   = "\033[48;5;236m\033[38;5;255m"
		yellowBg = "\033[43m\033[30m"
		greenBg  = "\033[42m\033[30m"
	)

	var b strings.Builder
	for i := 0; i < len(word); i++ {
		switch f[i] {
		case Hit:
			b.WriteString(greenBg)
		case Present:
			b.WriteString(yellowBg)
		default:
			b.WriteString(grayBg)
		}
		b.WriteByte(word[i])
		b.WriteString(" ")
		b.WriteString(reset)
	}
	return b.String()
}
