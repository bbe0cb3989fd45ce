package daily

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/storage"
	"github.com/robalobadob/wordle-helper/internal/words"
)

func TestDateKeyIsUTC(t *testing.T) {
	nz := time.FixedZone("NZDT", 13*3600)
	local := time.Date(2026, 3, 2, 8, 0, 0, 0, nz)
	assert.Equal(t, "2026-03-01", DateKey(local))
}

func TestWordIndex(t *testing.T) {
	d := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	i := WordIndex(d, "salt", 100)
	assert.Equal(t, i, WordIndex(d.Add(23*time.Hour), "salt", 100), "same UTC day")
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)
	assert.Zero(t, WordIndex(d, "salt", 0))

	// Different salts spread the days differently.
	differs := false
	for k := 0; k < 30 && !differs; k++ {
		day := d.AddDate(0, 0, k)
		differs = WordIndex(day, "a", 1000) != WordIndex(day, "b", 1000)
	}
	assert.True(t, differs)
}

func TestFor(t *testing.T) {
	lex, err := words.New(5, []string{"crane", "slate", "trace"}, nil)
	require.NoError(t, err)

	d := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	p := For(lex, d, "salt")
	assert.Equal(t, "2026-10-18", p.Date)
	assert.Equal(t, lex.At(p.WordIndex), p.Answer)
	assert.True(t, lex.IsAnswer(p.Answer))
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.OpenTest(t))

	played, err := s.AlreadyPlayed(ctx, "u1", "2026-10-18")
	require.NoError(t, err)
	assert.False(t, played)

	for _, r := range []Result{
		{UserID: "u1", Date: "2026-10-18", WordIndex: 3, Guesses: 4, ElapsedMs: 9000, Won: true},
		{UserID: "u2", Date: "2026-10-18", WordIndex: 3, Guesses: 3, ElapsedMs: 9000, Won: true},
		{UserID: "u3", Date: "2026-10-18", WordIndex: 3, Guesses: 6, ElapsedMs: 1000, Won: true},
		{UserID: "u4", Date: "2026-10-18", WordIndex: 3, Guesses: 6, ElapsedMs: 500},
		{UserID: "u1", Date: "2026-10-17", WordIndex: 8, Guesses: 2, ElapsedMs: 10, Won: true},
	} {
		ok, err := s.InsertResult(ctx, r)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := s.InsertResult(ctx, Result{UserID: "u1", Date: "2026-10-18", Guesses: 1, ElapsedMs: 1, Won: true})
	require.NoError(t, err)
	assert.False(t, ok, "second result for the same day is ignored")

	played, err = s.AlreadyPlayed(ctx, "u1", "2026-10-18")
	require.NoError(t, err)
	assert.True(t, played)

	played, err = s.AlreadyPlayed(ctx, "u4", "2026-10-18")
	require.NoError(t, err)
	assert.True(t, played, "a lost attempt still counts as played")

	lb, err := s.Leaderboard(ctx, "2026-10-18", 0)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{
		{UserID: "u3", Guesses: 6, ElapsedMs: 1000},
		{UserID: "u2", Guesses: 3, ElapsedMs: 9000},
		{UserID: "u1", Guesses: 4, ElapsedMs: 9000},
	}, lb)

	lb, err = s.Leaderboard(ctx, "2026-10-18", 1)
	require.NoError(t, err)
	assert.Len(t, lb, 1)
}

func TestStoreAttemptThenComplete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.OpenTest(t))
	const date = "2026-10-18"

	ok, err := s.InsertResult(ctx, Result{UserID: "u1", Date: date, WordIndex: 3})
	require.NoError(t, err)
	require.True(t, ok)

	played, err := s.AlreadyPlayed(ctx, "u1", date)
	require.NoError(t, err)
	assert.True(t, played, "starting the puzzle uses up the day")

	lb, err := s.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	assert.Empty(t, lb)

	updated, err := s.Complete(ctx, Result{UserID: "u1", Date: date, Guesses: 3, ElapsedMs: 4200, Won: true})
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = s.Complete(ctx, Result{UserID: "u1", Date: date, Guesses: 1, ElapsedMs: 1, Won: true})
	require.NoError(t, err)
	assert.False(t, updated, "a won row is final")

	lb, err = s.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{{UserID: "u1", Guesses: 3, ElapsedMs: 4200}}, lb)
}
