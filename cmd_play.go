// cmd_play.go
//
// `wordle play`: a terminal game.
//   - --assist prints the remaining candidates and what is known after
//     every guess.
//   - --curated draws those candidates from the answers list only.
//   - --daily plays today's shared puzzle. Starting it uses up the day,
//     whether the game is won, lost or abandoned.
//   - --debug reveals the answer up front.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/daily"
	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/stats"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

var playFlags struct {
	assist  bool
	curated bool
	daily   bool
	debug   bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lex, err := loadLexicon()
		if err != nil {
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		settings := game.Settings{
			Rows:    cfg.MaxGuesses,
			Assist:  playFlags.assist,
			Curated: playFlags.curated,
		}
		player := localPlayer()
		var puzzle daily.Puzzle
		dailyStore := daily.NewStore(db)
		if playFlags.daily {
			puzzle = daily.For(lex, time.Now(), cfg.DailySalt)
			// The attempt is stored before the first guess so quitting or
			// losing still uses up the day.
			started, err := dailyStore.InsertResult(ctx, daily.Result{
				UserID: player, Date: puzzle.Date, WordIndex: puzzle.WordIndex,
			})
			if err != nil {
				return err
			}
			if !started {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily puzzle for %s already played.\n", puzzle.Date)
				return nil
			}
			settings.Answer = puzzle.Answer
		}

		g, err := game.New(lex, settings)
		if err != nil {
			return err
		}
		if playFlags.debug {
			fmt.Fprintf(cmd.OutOrStdout(), "(answer: %s)\n", g.Answer)
		}

		start := time.Now()
		if err := runPlay(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), printer(), g); err != nil {
			return err
		}
		if !g.Finished {
			return nil
		}

		won, n := g.Outcome()
		if err := stats.NewStore(db).Record(ctx, stats.Result{
			PlayerID: player, GameID: g.ID, Answer: g.Answer, Won: won, Guesses: n,
		}); err != nil {
			log.Warn().Err(err).Msg("record result")
		}
		if playFlags.daily {
			if _, err := dailyStore.Complete(ctx, daily.Result{
				UserID: player, Date: puzzle.Date, WordIndex: puzzle.WordIndex,
				Guesses: n, ElapsedMs: time.Since(start).Milliseconds(), Won: won,
			}); err != nil {
				log.Warn().Err(err).Msg("record daily result")
			}
		}
		return nil
	},
}

func init() {
	f := playCmd.Flags()
	f.BoolVar(&playFlags.assist, "assist", false, "show remaining candidates after each guess")
	f.BoolVar(&playFlags.curated, "curated", false, "draw candidates from the answers list only")
	f.BoolVar(&playFlags.daily, "daily", false, "play today's daily puzzle")
	f.BoolVar(&playFlags.debug, "debug", false, "reveal the answer")
}

// runPlay reads guesses line by line until the game ends, input runs out or
// the player types q. Invalid guesses are reported and do not use a row.
func runPlay(ctx context.Context, in io.Reader, out io.Writer, p *ui.Printer, g *game.Game) error {
	sc := bufio.NewScanner(in)
	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Guess %d/%d: ", len(g.Guesses)+1, g.Rows)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "q") {
			fmt.Fprintf(out, "The word was %s.\n", g.Answer)
			return nil
		}

		turn, err := g.ApplyGuess(line)
		if errors.Is(err, game.ErrNotInWordList) {
			fmt.Fprintln(out, "Not in word list.")
			continue
		}
		if err != nil {
			fmt.Fprintf(out, "Invalid guess: %v\n", err)
			continue
		}

		for i, guess := range g.Guesses {
			fmt.Fprintln(out, p.Row(guess, g.Colors[i]))
		}
		if a := g.Assistant(); a != nil && turn.State == game.StatePlaying {
			fmt.Fprintln(out, p.Constraints(a.Constraints()))
			fmt.Fprintln(out, p.Candidates(turn.Remaining))
		}
	}

	if g.Won {
		fmt.Fprintf(out, "Solved in %d/%d!\n", len(g.Guesses), g.Rows)
	} else {
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", g.Answer)
	}
	return nil
}
