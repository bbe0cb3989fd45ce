// main.go
//
// Entry point for the wordle command.
// Responsibilities:
//   - Load .env, read config, apply global flags.
//   - Configure zerolog (console output on a terminal, JSON otherwise).
//   - Register subcommands: serve, play, assist, stats.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/assets"
	"github.com/robalobadob/wordle-helper/internal/config"
	"github.com/robalobadob/wordle-helper/internal/storage"
	"github.com/robalobadob/wordle-helper/internal/ui"
	"github.com/robalobadob/wordle-helper/internal/words"
)

var (
	cfg config.Config

	flagLogLevel string
	flagDBPath   string
	flagAnswers  string
	flagAllowed  string
	flagLength   int
	flagGuesses  int

	rootCmd = &cobra.Command{
		Use:           "wordle",
		Short:         "Play Wordle, or get help solving one",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if f.Changed("db") {
				cfg.DBPath = flagDBPath
			}
			if f.Changed("answers") {
				cfg.AnswersFile = flagAnswers
			}
			if f.Changed("allowed") {
				cfg.AllowedFile = flagAllowed
			}
			if f.Changed("length") {
				cfg.WordLength = flagLength
			}
			if f.Changed("guesses") {
				cfg.MaxGuesses = flagGuesses
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)
			return nil
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&flagDBPath, "db", "./data/wordle.db", "SQLite database path")
	pf.StringVar(&flagAnswers, "answers", "", "answers word list file (default: built in)")
	pf.StringVar(&flagAllowed, "allowed", "", "allowed guesses word list file (default: built in)")
	pf.IntVar(&flagLength, "length", 5, "word length")
	pf.IntVar(&flagGuesses, "guesses", 6, "maximum guesses per game")

	rootCmd.AddCommand(serveCmd, playCmd, assistCmd, statsCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// loadLexicon returns the configured word lists; the built-in lists are
// shared when no files are given.
func loadLexicon() (*words.Lexicon, error) {
	if cfg.AnswersFile == "" && cfg.AllowedFile == "" && cfg.WordLength == words.DefaultLength {
		return words.Default()
	}
	return words.Load(words.Options{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		Length:      cfg.WordLength,
	})
}

// openDB opens and migrates the database.
func openDB() (*sql.DB, error) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(db, assets.Migrations()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// printer styles output only when stdout is a terminal.
func printer() *ui.Printer {
	return ui.New(isatty.IsTerminal(os.Stdout.Fd()))
}

// localPlayer names the player whose stats the terminal commands keep.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return "local:" + u
	}
	return "local"
}
