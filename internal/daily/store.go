// internal/daily/store.go
//
// Persistence for daily challenge results (table daily_results, one row per
// player and date). A row with won=0 is an attempt that was lost or never
// finished: it locks the day but stays off the leaderboard.

package daily

import (
	"context"
	"database/sql"
)

const defaultLeaderboardLimit = 20

// Result is one player's daily attempt.
type Result struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
	Won       bool   `json:"won"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the player has a result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// InsertResult stores r. A second result for the same player and date is
// ignored; inserted reports whether this call wrote the row.
func (s *Store) InsertResult(ctx context.Context, r Result) (inserted bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results (user_id, date, word_index, guesses, elapsed_ms, won)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.UserID, r.Date, r.WordIndex, r.Guesses, r.ElapsedMs, r.Won,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Complete fills in the outcome of an attempt started with InsertResult.
// Rows already marked won are left alone; updated reports whether a row changed.
func (s *Store) Complete(ctx context.Context, r Result) (updated bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE daily_results SET guesses=?, elapsed_ms=?, won=?
		WHERE user_id=? AND date=? AND won=0`,
		r.Guesses, r.ElapsedMs, r.Won, r.UserID, r.Date,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LBRow is one leaderboard line.
type LBRow struct {
	UserID    string `json:"userId"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Leaderboard returns the fastest wins of a date, fewest guesses breaking ties.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND won=1
		ORDER BY elapsed_ms ASC, guesses ASC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
