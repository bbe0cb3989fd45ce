// cmd_assist.go
//
// `wordle assist`: help with a game played elsewhere. For every guess the
// player types the word and the colors the game showed (G green, Y yellow,
// X gray); the command prints what is known and the words still possible.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

var assistCurated bool

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Narrow down the answer of a game played elsewhere",
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := loadLexicon()
		if err != nil {
			return err
		}
		a := game.NewAssistant(lex.Length(), lex.Candidates(assistCurated))
		return runAssist(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), printer(), a)
	},
}

func init() {
	assistCmd.Flags().BoolVar(&assistCurated, "curated", false, "only consider words from the answers list")
}

// runAssist loops until one candidate is left, input runs out or the player
// types q. A line may hold both the guess and its colors ("crane xgygx");
// otherwise the colors are asked for separately. Rejected input leaves the
// assistant unchanged.
func runAssist(ctx context.Context, in io.Reader, out io.Writer, p *ui.Printer, a *game.Assistant) error {
	sc := bufio.NewScanner(in)
	read := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return "", false
		}
		line := strings.TrimSpace(sc.Text())
		return line, !strings.EqualFold(line, "q")
	}

	fmt.Fprintf(out, "%d candidates. Enter each guess and its colors (G/Y/X), q to quit.\n", len(a.Remaining()))
	for len(a.Remaining()) > 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := read("Guess: ")
		if !ok {
			return sc.Err()
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		guess, codes := fields[0], ""
		if len(fields) > 1 {
			codes = strings.Join(fields[1:], "")
		} else if codes, ok = read("Colors: "); !ok {
			return sc.Err()
		}

		remaining, err := a.ObserveCodes(guess, codes)
		if err != nil {
			fmt.Fprintf(out, "Rejected: %v\n", err)
			continue
		}
		log.Debug().Str("guess", guess).Str("colors", codes).Int("remaining", len(remaining)).Msg("observed")

		fmt.Fprintln(out, p.Constraints(a.Constraints()))
		fmt.Fprintln(out, p.Candidates(remaining))
	}

	switch rem := a.Remaining(); len(rem) {
	case 0:
		fmt.Fprintln(out, "No known word fits that feedback.")
	case 1:
		fmt.Fprintf(out, "The answer is %s.\n", rem[0])
	}
	return nil
}
