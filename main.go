package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/tgclark/wordle-solver/internal/feedback"
	"github.com/tgclark/wordle-solver/internal/httpserver"
	"github.com/tgclark/wordle-solver/internal/sim"
	"github.com/tgclark/wordle-solver/internal/solver"
	"github.com/tgclark/wordle-solver/internal/store"
	"github.com/tgclark/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	app := &cli.Command{
		Name:  "wordle-solver",
		Usage: "constraint solver for five-letter word puzzles",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Usage: "path to an alternate word list"},
		},
		Commands: []*cli.Command{
			serveCmd(),
			suggestCmd(),
			playCmd(),
			simulateCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// serveCmd starts the HTTP solver service.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP solver service",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := words.Init(); err != nil {
				log.Fatal().Err(err).Msg("failed to load corpus")
			}

			db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
			if err != nil {
				log.Fatal().Err(err).Msg("open database")
			}
			defer db.Close()
			if err := migrate(db); err != nil {
				log.Fatal().Err(err).Msg("migrate database")
			}

			mem := store.NewMemoryStore()
			srv := httpserver.New(mem, db)
			port := getEnv("PORT", "5175")
			log.Info().Str("port", port).Int("corpus", words.Stats()).Msg("starting solver service")
			return srv.Start(":" + port)
		},
	}
}

// suggestCmd prints the next guess for a series of guess/feedback pairs.
func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "print the next guess given guess/feedback pairs",
		ArgsUsage: "[guess feedback]...  (feedback over x=hit i=present e=absent)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "starting-guess override"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			corpus, err := loadCorpus(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args)%2 != 0 {
				return fmt.Errorf("arguments must be guess/feedback pairs")
			}

			s := solver.New(corpus, cmd.String("start"), log.Logger)
			for i := 0; i < len(args); i += 2 {
				if err := s.ApplyFeedbackString(args[i], args[i+1]); err != nil {
					return err
				}
			}

			guess, ok := s.BestGuess()
			if !ok {
				fmt.Println("no candidates remain")
				return nil
			}
			fmt.Printf("%s (%d candidates remain)\n", guess, s.Remaining())
			top := s.Candidates()
			if len(top) > 10 {
				top = top[:10]
			}
			fmt.Println("top:", strings.Join(top, " "))
			return nil
		},
	}
}

// playCmd runs an interactive solving session against an external game.
func playCmd() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "interactive session: type the feedback the game shows you",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "starting-guess override"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			corpus, err := loadCorpus(cmd)
			if err != nil {
				return err
			}
			s := solver.New(corpus, cmd.String("start"), log.Logger)
			in := bufio.NewScanner(os.Stdin)

			for {
				guess, ok := s.BestGuess()
				if !ok {
					fmt.Println("no candidates remain; check the feedback you entered")
					return nil
				}
				fmt.Printf("guess: %s  (%d candidates)\n", guess, s.Remaining())
				fmt.Print("feedback (x=hit i=present e=absent, q to quit): ")
				if !in.Scan() {
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				if line == "q" || line == "quit" {
					return nil
				}
				fb, err := feedback.Parse(line, words.WordLength)
				if err != nil {
					fmt.Println("  ", err)
					continue
				}
				fmt.Println("  ", fb.ColoredWord(guess))
				if fb.AllHit() {
					fmt.Println("solved")
					return nil
				}
				if err := s.ApplyFeedback(guess, fb); err != nil {
					fmt.Println("  ", err)
				}
			}
		},
	}
}

// simulateCmd benchmarks the solver across the corpus.
func simulateCmd() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "solve every target word and report attempt statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "starting-guess override"},
			&cli.StringFlag{Name: "targets", Usage: "comma-separated targets (default: whole corpus)"},
			&cli.BoolFlag{Name: "strict", Usage: "use the duplicate-aware scorer"},
			&cli.BoolFlag{Name: "save", Usage: "record the aggregate result in the database"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			corpus, err := loadCorpus(cmd)
			if err != nil {
				return err
			}
			targets := corpus
			if t := cmd.String("targets"); t != "" {
				targets = words.Normalize(strings.Split(t, ","))
			}

			rep := sim.RunAll(corpus, targets, sim.Options{
				StartingWord: cmd.String("start"),
				Strict:       cmd.Bool("strict"),
				Progress:     true,
				Logger:       log.Logger,
			})
			fmt.Println(rep)

			if cmd.Bool("save") {
				db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
				if err != nil {
					return err
				}
				defer db.Close()
				if err := migrate(db); err != nil {
					return err
				}
				if err := insertSimRun(db, rep, cmd.String("start"), cmd.Bool("strict")); err != nil {
					return err
				}
				log.Info().Msg("saved simulation run")
			}
			return nil
		},
	}
}

// loadCorpus resolves the word list for CLI commands: --corpus file if
// given, otherwise the default (env-or-embedded) corpus.
func loadCorpus(cmd *cli.Command) ([]string, error) {
	if path := cmd.String("corpus"); path != "" {
		return words.LoadFile(path)
	}
	if err := words.Init(); err != nil {
		return nil, err
	}
	return words.Corpus(), nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
