package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/daily"
	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/storage"
	"github.com/robalobadob/wordle-helper/internal/ui"
	"github.com/robalobadob/wordle-helper/internal/words"
)

func testGame(t *testing.T, s game.Settings) *game.Game {
	t.Helper()
	lex, err := words.New(5, []string{"crane", "crave", "trace", "brace", "slate"}, []string{"adieu"})
	require.NoError(t, err)
	g, err := game.New(lex, s)
	require.NoError(t, err)
	return g
}

func TestRunPlayWin(t *testing.T) {
	g := testGame(t, game.Settings{Answer: "crane"})
	var out bytes.Buffer

	in := strings.NewReader("zzzzz\ncran\n\ntrace\ncrane\n")
	require.NoError(t, runPlay(context.Background(), in, &out, ui.New(false), g))

	assert.True(t, g.Won)
	assert.Equal(t, []string{"TRACE", "CRANE"}, g.Guesses)
	text := out.String()
	assert.Contains(t, text, "Not in word list.")
	assert.Contains(t, text, "Invalid guess:")
	assert.Contains(t, text, " T [R][A](C)[E]")
	assert.Contains(t, text, "Solved in 2/6!")
}

func TestRunPlayAssist(t *testing.T) {
	g := testGame(t, game.Settings{Answer: "crane", Assist: true, Curated: true})
	var out bytes.Buffer

	require.NoError(t, runPlay(context.Background(), strings.NewReader("trace\nq\n"), &out, ui.New(false), g))
	text := out.String()
	assert.Contains(t, text, "Pattern:  _RA_E")
	assert.Contains(t, text, "CRANE CRAVE\n2 possible")
	assert.Contains(t, text, "The word was CRANE.")
	assert.False(t, g.Finished)
}

func TestRunPlayLoss(t *testing.T) {
	g := testGame(t, game.Settings{Answer: "crane", Rows: 2})
	var out bytes.Buffer

	require.NoError(t, runPlay(context.Background(), strings.NewReader("slate\nadieu\n"), &out, ui.New(false), g))
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Contains(t, out.String(), "Out of guesses. The word was CRANE.")
}

func TestRunPlayStopsOnEOF(t *testing.T) {
	g := testGame(t, game.Settings{Answer: "crane"})
	var out bytes.Buffer
	require.NoError(t, runPlay(context.Background(), strings.NewReader("trace"), &out, ui.New(false), g))
	assert.False(t, g.Finished)
	assert.Len(t, g.Guesses, 1)
}

func TestRunAssist(t *testing.T) {
	a := game.NewAssistant(5, []string{"CRANE", "CRAVE", "TRACE", "BRACE", "SLATE"})
	var out bytes.Buffer

	in := strings.NewReader("trace xgb\ntrace\nxggyg\ncrave gggxg\n")
	require.NoError(t, runAssist(context.Background(), in, &out, ui.New(false), a))

	text := out.String()
	assert.Contains(t, text, "5 candidates.")
	assert.Contains(t, text, "Rejected:")
	assert.Contains(t, text, "CRANE CRAVE\n2 possible")
	assert.Contains(t, text, "The answer is CRANE.")
	assert.Len(t, a.History(), 2)
}

func TestRunAssistQuit(t *testing.T) {
	a := game.NewAssistant(5, []string{"CRANE", "CRAVE"})
	var out bytes.Buffer
	require.NoError(t, runAssist(context.Background(), strings.NewReader("q\n"), &out, ui.New(false), a))
	assert.Empty(t, a.History())
	assert.NotContains(t, out.String(), "The answer is")
}

const testSalt = "test-salt"

// cliDB points the CLI at a fresh database with a known player and salt.
func cliDB(t *testing.T) string {
	t.Helper()
	for k, v := range map[string]string{
		"USER":               "tester",
		"DAILY_SALT":         testSalt,
		"NODE_ENV":           "",
		"WORDS_ANSWERS_FILE": "",
		"WORDS_ALLOWED_FILE": "",
		"WORD_LENGTH":        "",
		"MAX_GUESSES":        "",
	} {
		t.Setenv(k, v)
	}
	return filepath.Join(t.TempDir(), "wordle.db")
}

// execute runs the root command with args and stdin and returns its stdout.
// Flag variables survive between runs in one process, so they are reset first.
func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	playFlags.assist, playFlags.curated, playFlags.daily, playFlags.debug = false, false, false, false
	statsRecent = 0
	flagLogLevel, flagAnswers, flagAllowed = "info", "", ""
	flagLength, flagGuesses = 5, 6

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestPlayDailyQuitUsesUpTheDay(t *testing.T) {
	db := cliDB(t)

	out := execute(t, "q\n", "play", "--daily", "--db", db)
	assert.Contains(t, out, "The word was")

	out = execute(t, "q\n", "play", "--daily", "--db", db)
	assert.Contains(t, out, "already played")
	assert.NotContains(t, out, "Guess 1/")

	out = execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Played 0")
}

func TestPlayDailyWin(t *testing.T) {
	db := cliDB(t)
	lex, err := words.Default()
	require.NoError(t, err)
	puzzle := daily.For(lex, time.Now(), testSalt)

	out := execute(t, puzzle.Answer+"\n", "play", "--daily", "--db", db)
	assert.Contains(t, out, "Solved in 1/6!")

	out = execute(t, "", "stats", "--db", db, "--recent", "5")
	assert.Contains(t, out, "Played 1  Win 100%")
	assert.Contains(t, out, puzzle.Answer+"  won in 1")

	out = execute(t, puzzle.Answer+"\n", "play", "--daily", "--db", db)
	assert.Contains(t, out, "already played")

	conn, err := storage.Open(db)
	require.NoError(t, err)
	defer conn.Close()
	lb, err := daily.NewStore(conn).Leaderboard(context.Background(), puzzle.Date, 0)
	require.NoError(t, err)
	require.Len(t, lb, 1)
	assert.Equal(t, "local:tester", lb[0].UserID)
	assert.Equal(t, 1, lb[0].Guesses)
}

func TestPlayDailyLossStaysOffLeaderboard(t *testing.T) {
	db := cliDB(t)
	lex, err := words.Default()
	require.NoError(t, err)
	puzzle := daily.For(lex, time.Now(), testSalt)

	wrong := lex.At(0)
	if strings.EqualFold(wrong, puzzle.Answer) {
		wrong = lex.At(1)
	}
	out := execute(t, wrong+"\n", "play", "--daily", "--guesses", "1", "--db", db)
	assert.Contains(t, out, "Out of guesses.")

	out = execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Played 1  Win 0%")

	conn, err := storage.Open(db)
	require.NoError(t, err)
	defer conn.Close()
	store := daily.NewStore(conn)
	played, err := store.AlreadyPlayed(context.Background(), "local:tester", puzzle.Date)
	require.NoError(t, err)
	assert.True(t, played)
	lb, err := store.Leaderboard(context.Background(), puzzle.Date, 0)
	require.NoError(t, err)
	assert.Empty(t, lb)
}

func TestPlayDebugRevealsAnswer(t *testing.T) {
	db := cliDB(t)

	out := execute(t, "q\n", "play", "--debug", "--db", db)
	require.Contains(t, out, "(answer: ")
	answer := strings.TrimSuffix(strings.SplitN(strings.SplitN(out, "(answer: ", 2)[1], "\n", 2)[0], ")")
	assert.Contains(t, out, "The word was "+answer+".")

	out = execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Played 0", "an abandoned game is not recorded")
}
