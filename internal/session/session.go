// internal/session/session.go
//
// A solving session pairs a Solver instance with a service-level identity.
// The HTTP layer creates one Session per client solve; the Solver inside is
// only ever touched through the session, which keeps the single-owner rule.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"

	"github.com/tgclark/wordle-solver/internal/solver"
)

// Session holds one client's solving state.
type Session struct {
	ID        string
	Solver    *solver.Solver
	CreatedAt time.Time
	Attempts  int  // feedback rounds applied so far
	Stuck     bool // corpus filtered to empty before solving
}

// New constructs a session over its own Solver. corpus and startingWord are
// passed through to solver.New.
func New(corpus []string, startingWord string, logger zerolog.Logger) *Session {
	return &Session{
		ID:        randomID(),
		Solver:    solver.New(corpus, startingWord, logger),
		CreatedAt: time.Now().UTC(),
	}
}

// Solved reports whether the session's last feedback was all-Hit.
func (s *Session) Solved() bool { return s.Solver.Solved() }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
