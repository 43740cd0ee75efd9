// internal/sim/sim.go
//
// Simulation driver: runs the solver against known targets and aggregates
// attempt statistics. Each target gets its own Solver instance, so runs can
// fan out across goroutines without sharing solver state.

package sim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/tgclark/wordle-solver/internal/feedback"
	"github.com/tgclark/wordle-solver/internal/solver"
)

// worstKept is how many worst-performing games a Report retains.
const worstKept = 5

// Options configure a simulation run.
type Options struct {
	StartingWord string // first guess for every game; empty = solver's pick
	Strict       bool   // use the duplicate-aware two-pass scorer
	Progress     bool   // render a progress bar on stderr
	Logger       zerolog.Logger
}

// GameResult records one simulated game.
type GameResult struct {
	Target    string              `json:"target"`
	Attempts  int                 `json:"attempts"`
	Guesses   []string            `json:"guesses"`
	Feedbacks []feedback.Feedback `json:"feedbacks"`
	Stuck     bool                `json:"stuck"` // solver ran out of candidates
}

// Report aggregates results across a whole run.
type Report struct {
	Games        int
	Solved       int
	Failed       int
	AvgAttempts  float64
	MinAttempts  int
	MaxAttempts  int
	Distribution map[int]int  // attempts -> game count (solved games only)
	Worst        []GameResult // highest attempt counts, then failures
}

// RunOne simulates a single game against target. The solver proposes a
// guess, the scorer evaluates it against the target, and the feedback is
// fed back in until it comes out all-Hit. A Stuck result means the corpus
// emptied first, which for an unmodified corpus indicates target was never
// in it.
func RunOne(corpus []string, target string, opts Options) GameResult {
	score := feedback.Score
	if opts.Strict {
		score = feedback.ScoreStrict
	}

	s := solver.New(corpus, opts.StartingWord, opts.Logger)
	res := GameResult{Target: target}

	// The corpus strictly shrinks while guesses miss, so this bound is
	// never reached for a target present in the corpus.
	maxRounds := len(corpus) + 1
	for round := 0; round < maxRounds; round++ {
		guess, ok := s.BestGuess()
		if !ok {
			res.Stuck = true
			return res
		}
		fb := score(guess, target)
		res.Attempts++
		res.Guesses = append(res.Guesses, guess)
		res.Feedbacks = append(res.Feedbacks, fb)
		if fb.AllHit() {
			return res
		}
		if err := s.ApplyFeedback(guess, fb); err != nil {
			// Cannot happen for corpus-sourced guesses; treat as fatal
			// for this game rather than looping.
			opts.Logger.Error().Err(err).Str("target", target).Msg("apply feedback")
			res.Stuck = true
			return res
		}
	}
	res.Stuck = true
	return res
}

// RunAll simulates every target and aggregates a Report. Targets fan out
// across goroutines, one Solver per target.
func RunAll(corpus []string, targets []string, opts Options) Report {
	bar := progressbar.DefaultSilent(int64(len(targets)))
	if opts.Progress {
		bar = progressbar.Default(int64(len(targets)))
	}

	results := make([]GameResult, len(targets))

	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)
	for i, target := range targets {
		i, target := i, target
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = RunOne(corpus, target, opts)
			_ = bar.Add(1)
		}()
	}
	wg.Wait()

	return summarize(results)
}

// summarize folds per-game results into a Report.
func summarize(results []GameResult) Report {
	rep := Report{
		Games:        len(results),
		Distribution: make(map[int]int),
	}
	total := 0
	for _, r := range results {
		if r.Stuck {
			rep.Failed++
			continue
		}
		rep.Solved++
		total += r.Attempts
		rep.Distribution[r.Attempts]++
		if rep.MinAttempts == 0 || r.Attempts < rep.MinAttempts {
			rep.MinAttempts = r.Attempts
		}
		if r.Attempts > rep.MaxAttempts {
			rep.MaxAttempts = r.Attempts
		}
	}
	if rep.Solved > 0 {
		rep.AvgAttempts = float64(total) / float64(rep.Solved)
	}

	worst := make([]GameResult, len(results))
	copy(worst, results)
	sort.SliceStable(worst, func(i, j int) bool {
		if worst[i].Stuck != worst[j].Stuck {
			return worst[i].Stuck
		}
		return worst[i].Attempts > worst[j].Attempts
	})
	if len(worst) > worstKept {
		worst = worst[:worstKept]
	}
	rep.Worst = worst
	return rep
}

// String renders the report for terminal output.
func (r Report) String() string {
	s := fmt.Sprintf("games=%d solved=%d failed=%d avg=%.2f min=%d max=%d",
		r.Games, r.Solved, r.Failed, r.AvgAttempts, r.MinAttempts, r.MaxAttempts)
	for _, w := range r.Worst {
		s += fmt.Sprintf("\n  worst: %s attempts=%d stuck=%v", w.Target, w.Attempts, w.Stuck)
	}
	return s
}
