// cmd_stats.go
//
// `wordle stats`: the local player's results from `wordle play`.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/stats"
)

var statsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show played games, streaks and the guess distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		st := stats.NewStore(db)
		player := localPlayer()
		sum, err := st.Summary(cmd.Context(), player, cfg.MaxGuesses)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		p := printer()
		fmt.Fprintln(out, p.Summary(sum))

		if statsRecent <= 0 {
			return nil
		}
		recent, err := st.Recent(cmd.Context(), player, statsRecent)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		for _, r := range recent {
			result := "lost"
			if r.Won {
				result = fmt.Sprintf("won in %d", r.Guesses)
			}
			fmt.Fprintf(out, "%s  %s\n", r.Answer, result)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "also list the last N games")
}
