// internal/stats/stats.go
//
// Per-player game statistics backed by the game_results table.
// Responsibilities:
//   - Record finished games (won/lost, guesses used).
//   - Summarize: played, wins, current/max win streak, guess distribution.
//   - List a player's most recent games.

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrInvalidResult = errors.New("invalid result")

// Result is one finished game.
type Result struct {
	PlayerID string `json:"playerId"`
	GameID   string `json:"gameId"`
	Answer   string `json:"answer"`
	Won      bool   `json:"won"`
	Guesses  int    `json:"guesses"`
}

// Summary aggregates a player's results.
// Distribution[i] counts wins that took i+1 guesses.
type Summary struct {
	Played        int   `json:"played"`
	Wins          int   `json:"wins"`
	WinPercent    int   `json:"winPercent"`
	CurrentStreak int   `json:"currentStreak"`
	MaxStreak     int   `json:"maxStreak"`
	Distribution  []int `json:"distribution"`
}

// Store persists results in SQLite.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record stores a finished game.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.PlayerID == "" || r.Guesses < 1 {
		return fmt.Errorf("%w: player %q guesses %d", ErrInvalidResult, r.PlayerID, r.Guesses)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_results (player_id, game_id, answer, won, guesses)
		VALUES (?, ?, ?, ?, ?)`,
		r.PlayerID, r.GameID, r.Answer, r.Won, r.Guesses,
	)
	return err
}

// Summary folds every result of player in insertion order.
// Wins above maxGuesses are counted but left out of the distribution.
func (s *Store) Summary(ctx context.Context, player string, maxGuesses int) (Summary, error) {
	sum := Summary{Distribution: make([]int, max(maxGuesses, 0))}
	rows, err := s.db.QueryContext(ctx,
		`SELECT won, guesses FROM game_results WHERE player_id=? ORDER BY id ASC`, player)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	for rows.Next() {
		var won bool
		var guesses int
		if err := rows.Scan(&won, &guesses); err != nil {
			return sum, err
		}
		sum.Played++
		if !won {
			sum.CurrentStreak = 0
			continue
		}
		sum.Wins++
		sum.CurrentStreak++
		sum.MaxStreak = max(sum.MaxStreak, sum.CurrentStreak)
		if guesses >= 1 && guesses <= len(sum.Distribution) {
			sum.Distribution[guesses-1]++
		}
	}
	if sum.Played > 0 {
		sum.WinPercent = sum.Wins * 100 / sum.Played
	}
	return sum, rows.Err()
}

// Recent returns up to limit results of player, newest first.
func (s *Store) Recent(ctx context.Context, player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, game_id, answer, won, guesses
		FROM game_results
		WHERE player_id=?
		ORDER BY id DESC
		LIMIT ?`, player, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.PlayerID, &r.GameID, &r.Answer, &r.Won, &r.Guesses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
