package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/stats"
)

func TestRowPlain(t *testing.T) {
	colors, err := feedback.Score("TRACE", "CRANE")
	require.NoError(t, err)
	assert.Equal(t, " T [R][A](C)[E]", New(false).Row("TRACE", colors))
}

func TestRowColorKeepsLetters(t *testing.T) {
	colors, err := feedback.Score("TRACE", "CRANE")
	require.NoError(t, err)
	out := New(true).Row("TRACE", colors)
	for _, l := range "TRACE" {
		assert.Contains(t, out, string(l))
	}
}

func TestCandidatesGrid(t *testing.T) {
	words := make([]string, 32)
	for i := range words {
		words[i] = "CRANE"
	}
	lines := strings.Split(New(false).Candidates(words), "\n")
	require.Len(t, lines, 4)
	assert.Len(t, strings.Fields(lines[0]), PerRow)
	assert.Len(t, strings.Fields(lines[1]), PerRow)
	assert.Len(t, strings.Fields(lines[2]), 2)
	assert.Equal(t, "32 possible", lines[3])

	assert.Equal(t, "0 possible", New(false).Candidates(nil))
}

func TestConstraints(t *testing.T) {
	s := feedback.NewState(5)
	for _, g := range []string{"ERROR", "TRACE"} {
		colors, err := feedback.Score(g, "RIVER")
		require.NoError(t, err)
		s, err = feedback.Merge(s, g, colors)
		require.NoError(t, err)
	}

	out := New(false).Constraints(s)
	assert.Contains(t, out, "Pattern:  ____R")
	assert.Contains(t, out, "R×1 not at 2,3")
	assert.Contains(t, out, "E×1 not at 1,5")
	assert.Contains(t, out, "Absent:   ACOT")
	assert.Contains(t, out, "At most:  R≤2")
}

func TestConstraintsEmpty(t *testing.T) {
	assert.Equal(t, "Pattern:  _____", New(false).Constraints(feedback.NewState(5)))
}

func TestSummary(t *testing.T) {
	out := New(false).Summary(stats.Summary{
		Played: 4, Wins: 3, WinPercent: 75, CurrentStreak: 2, MaxStreak: 2,
		Distribution: []int{0, 1, 2, 0, 0, 0},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Played 4  Win 75%  Streak 2  Best 2", lines[0])
	assert.Equal(t, "2 "+strings.Repeat("#", 15)+" 1", lines[2])
	assert.Equal(t, "3 "+strings.Repeat("#", 30)+" 2", lines[3])
	assert.Equal(t, "1 # 0", lines[1])
}
