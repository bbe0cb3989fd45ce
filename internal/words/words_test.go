package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultLength, lex.Length())
	assert.True(t, lex.IsAnswer("crane"))
	assert.True(t, lex.IsAllowed("CRANE"))
	assert.True(t, lex.IsAllowed("adieu"), "guess-only words are allowed")
	assert.False(t, lex.IsAnswer("adieu"))
	assert.False(t, lex.IsAllowed("haughty"), "wrong length is dropped")

	answers, allowed := lex.Stats()
	assert.Greater(t, answers, 500)
	assert.Greater(t, allowed, answers)
	for _, w := range lex.Allowed() {
		require.Len(t, w, DefaultLength)
		require.Equal(t, strings.ToUpper(w), w)
	}
}

func TestReadWordFS(t *testing.T) {
	fsys := fstest.MapFS{
		"answers.txt": {Data: []byte("# header\ncrane crave\n\n  trace\n")},
	}
	got, err := readWordFS(fsys, "answers.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "crave", "trace"}, got)

	_, err = readWordFS(fsys, "missing.txt")
	require.Error(t, err)
}

func TestLoadBothFiles(t *testing.T) {
	answers := writeList(t, "answers.txt", "# comment\ncrane slate\n\nTRACE\ncrane\n")
	allowed := writeList(t, "allowed.txt", "adieu roate\ncranes\nr0ate\n")

	lex, err := Load(Options{AnswersFile: answers, AllowedFile: allowed})
	require.NoError(t, err)

	assert.Equal(t, []string{"CRANE", "SLATE", "TRACE"}, lex.Answers())
	assert.Equal(t, []string{"CRANE", "SLATE", "TRACE", "ADIEU", "ROATE"}, lex.Allowed())
	assert.Equal(t, lex.Answers(), lex.Candidates(true))
	assert.Equal(t, lex.Allowed(), lex.Candidates(false))
}

func TestLoadSingleFileServesBoth(t *testing.T) {
	only := writeList(t, "all.txt", "tea eat ate\nteas\n")
	lex, err := Load(Options{AllowedFile: only, Length: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, lex.Length())
	assert.Equal(t, []string{"TEA", "EAT", "ATE"}, lex.Answers())
	assert.True(t, lex.IsAnswer("eat"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Options{AnswersFile: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)

	empty := writeList(t, "empty.txt", "# nothing\n")
	_, err = Load(Options{AnswersFile: empty})
	require.ErrorIs(t, err, ErrNoAnswers)

	// The embedded lists hold no seven-letter words.
	_, err = Load(Options{Length: 7})
	require.ErrorIs(t, err, ErrNoAnswers)
}

func TestRandomAnswerAndAt(t *testing.T) {
	lex, err := New(5, []string{"crane", "slate"}, nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.True(t, lex.IsAnswer(lex.RandomAnswer()))
	}
	assert.Equal(t, "SLATE", lex.At(1))
	assert.Equal(t, "CRANE", lex.At(2))
	assert.Equal(t, "SLATE", lex.At(-1))
}

func TestCandidatesIsACopy(t *testing.T) {
	lex, err := New(5, []string{"crane", "slate"}, nil)
	require.NoError(t, err)

	c := lex.Candidates(true)
	c[0] = "XXXXX"
	assert.Equal(t, "CRANE", lex.Answers()[0])
}
