// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Benchmark" mode.
// Exposes two endpoints under /daily:
//   - POST /daily/solve       → run the solver against today's target
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can submit once per day (enforced by DB UNIQUE constraint).
// The target word is selected deterministically from date + salt, so every
// participant solves the same word; fewest attempts wins, wall time breaks
// ties.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/tgclark/wordle-solver/internal/daily"
	"github.com/tgclark/wordle-solver/internal/sim"
	"github.com/tgclark/wordle-solver/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv   *Server
	store *daily.Store
	salt  string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:   s,
		store: daily.NewStore(s.db),
		salt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/solve", dd.handleSolve)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// targetNow returns today's date key, deterministic word index, and target.
func (d *dailyServer) targetNow() (date string, idx int, target string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	corpus := words.Corpus()
	if len(corpus) == 0 {
		return date, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, len(corpus))
	return date, idx, corpus[idx]
}

// userIDWithAnon returns the authenticated user ID if logged in, otherwise
// ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/solve

// dailySolveReq is the request payload for /daily/solve.
type dailySolveReq struct {
	StartingWord string `json:"startingWord"` // optional first-guess override
	Strict       bool   `json:"strict"`       // duplicate-aware scorer
}

// dailySolveRes is the response payload for /daily/solve.
type dailySolveRes struct {
	Date      string   `json:"date"`
	Attempts  int      `json:"attempts"`
	Guesses   []string `json:"guesses"`
	Feedbacks []string `json:"feedbacks"` // wire-encoded, one per guess
	Solved    bool     `json:"solved"`
	Played    bool     `json:"played"` // true if user already submitted today
}

// handleSolve runs a full simulated solve against today's target and
// persists the result. A second submission on the same date returns
// Played=true without re-running.
func (d *dailyServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, idx, target := d.targetNow()
	if target == "" {
		http.Error(w, `{"error":"no_corpus"}`, http.StatusInternalServerError)
		return
	}

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailySolveRes{Date: date, Played: true})
		return
	}

	var p dailySolveReq
	_ = json.NewDecoder(r.Body).Decode(&p)

	start := time.Now()
	res := sim.RunOne(words.Corpus(), target, sim.Options{
		StartingWord: p.StartingWord,
		Strict:       p.Strict,
		Logger:       log.Logger,
	})
	elapsed := int(time.Since(start).Milliseconds())

	if !res.Stuck {
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, WordIndex: idx, Attempts: res.Attempts, ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
	}

	out := dailySolveRes{
		Date:     date,
		Attempts: res.Attempts,
		Guesses:  res.Guesses,
		Solved:   !res.Stuck,
	}
	for _, fb := range res.Feedbacks {
		out.Feedbacks = append(out.Feedbacks, fb.String())
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default
// today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.targetNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
