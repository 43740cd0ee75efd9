// internal/feedback/feedback.go
//
// Per-letter feedback codes and their wire encoding.
// Defines:
//   - Code: closed enum for a single letter result (hit/present/absent).
//   - Feedback: one Code per guess position.
//   - Parse/String: conversion to and from the "xie" string encoding.
//
// Wire encoding (case-insensitive on input):
//   'x' = hit     (letter correct, correct position)
//   'i' = present (letter in the target, different position)
//   'e' = absent  (letter excluded)

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents the evaluation result for a single letter in a guess.
type Code uint8

const (
	Absent Code = iota
	Present
	Hit
)

// ErrInvalidInput is returned for malformed guesses or feedback strings.
// Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Feedback is an ordered sequence of Codes, one per guess position.
type Feedback []Code

// Rune returns the wire character for a Code.
func (c Code) Rune() rune {
	switch c {
	case Hit:
		return 'x'
	case Present:
		return 'i'
	default:
		return 'e'
	}
}

// Parse converts a feedback string into a Feedback. The input must be
// exactly length characters over {x,i,e}, case-insensitive.
func Parse(s string, length int) (Feedback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != length {
		return nil, fmt.Errorf("%w: feedback %q must be %d characters", ErrInvalidInput, s, length)
	}
	fb := make(Feedback, length)
	for i := 0; i < length; i++ {
		switch s[i] {
		case 'x':
			fb[i] = Hit
		case 'i':
			fb[i] = Present
		case 'e':
			fb[i] = Absent
		default:
			return nil, fmt.Errorf("%w: feedback code %q (want x, i, or e)", ErrInvalidInput, string(s[i]))
		}
	}
	return fb, nil
}

// String renders the Feedback in its wire encoding.
func (f Feedback) String() string {
	var b strings.Builder
	for _, c := range f {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// AllHit reports whether every position is a Hit.
func (f Feedback) AllHit() bool {
	for _, c := range f {
		if c != Hit {
			return false
		}
	}
	return len(f) > 0
}

// Equal reports whether two Feedbacks are identical.
func (f Feedback) Equal(other Feedback) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}
