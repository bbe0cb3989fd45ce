// internal/ui/ui.go
//
// Terminal rendering for the play, assist and stats commands.
// Responsibilities:
//   - Colored letter tiles for a scored guess (lipgloss).
//   - A plain fallback when output is not a terminal.
//   - Candidate grids, constraint summaries and the guess distribution.

package ui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/stats"
)

// PerRow is how many candidates a grid line holds.
const PerRow = 15

var (
	colorGreen  = lipgloss.Color("#538D4E")
	colorYellow = lipgloss.Color("#B59F3B")
	colorGray   = lipgloss.Color("#3A3A3C")

	tile = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)

	tiles = map[feedback.Color]lipgloss.Style{
		feedback.Green:  tile.Background(colorGreen),
		feedback.Yellow: tile.Background(colorYellow),
		feedback.Black:  tile.Background(colorGray),
	}

	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	barStyle   = lipgloss.NewStyle().Background(colorGreen).Foreground(lipgloss.Color("#FFFFFF"))
)

// Printer renders with or without ANSI styling.
type Printer struct {
	color bool
}

func New(color bool) *Printer { return &Printer{color: color} }

// Row renders one scored guess. Plain output marks greens as [A], yellows
// as (A) and blacks as  A .
func (p *Printer) Row(guess string, colors feedback.Colors) string {
	var b strings.Builder
	for i := 0; i < len(guess) && i < len(colors); i++ {
		l := string(guess[i])
		if p.color {
			b.WriteString(tiles[colors[i]].Render(l))
			continue
		}
		switch colors[i] {
		case feedback.Green:
			b.WriteString("[" + l + "]")
		case feedback.Yellow:
			b.WriteString("(" + l + ")")
		default:
			b.WriteString(" " + l + " ")
		}
	}
	return b.String()
}

// Candidates lays words out PerRow to a line, followed by the count.
func (p *Printer) Candidates(words []string) string {
	var b strings.Builder
	for i := 0; i < len(words); i += PerRow {
		end := min(i+PerRow, len(words))
		b.WriteString(strings.Join(words[i:end], " "))
		b.WriteByte('\n')
	}
	b.WriteString(p.muted(fmt.Sprintf("%d possible", len(words))))
	return b.String()
}

// Constraints summarizes what is known about the answer.
func (p *Printer) Constraints(s *feedback.State) string {
	var b strings.Builder
	b.WriteString(p.title("Pattern:  ") + s.Pattern() + "\n")

	snap := s.Snapshot()
	if len(snap.Ambiguous) > 0 {
		var parts []string
		for _, l := range sortedLetters(snap.Ambiguous) {
			a := snap.Ambiguous[l]
			if s.Outstanding(l[0]) == 0 {
				continue
			}
			part := fmt.Sprintf("%s×%d", l, s.Outstanding(l[0]))
			if len(a.ExcludedPositions) > 0 {
				pos := make([]string, len(a.ExcludedPositions))
				for i, x := range a.ExcludedPositions {
					pos[i] = fmt.Sprint(x + 1)
				}
				part += " not at " + strings.Join(pos, ",")
			}
			parts = append(parts, part)
		}
		if len(parts) > 0 {
			b.WriteString(p.title("Contains: ") + strings.Join(parts, "; ") + "\n")
		}
	}
	if snap.Excluded != "" {
		b.WriteString(p.title("Absent:   ") + snap.Excluded + "\n")
	}
	if len(snap.Ceiling) > 0 {
		var parts []string
		for _, l := range sortedLetters(snap.Ceiling) {
			parts = append(parts, fmt.Sprintf("%s≤%d", l, snap.Ceiling[l]))
		}
		b.WriteString(p.title("At most:  ") + strings.Join(parts, " ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Summary renders a stats summary with one bar per guess count.
func (p *Printer) Summary(s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s %d%%  %s %d  %s %d\n",
		p.title("Played"), s.Played,
		p.title("Win"), s.WinPercent,
		p.title("Streak"), s.CurrentStreak,
		p.title("Best"), s.MaxStreak)

	top := 0
	for _, n := range s.Distribution {
		top = max(top, n)
	}
	for i, n := range s.Distribution {
		width := 1
		if top > 0 {
			width = max(1, n*30/top)
		}
		bar := fmt.Sprintf("%-*d", width, n)
		if p.color {
			bar = barStyle.Render(bar)
		} else {
			bar = strings.Repeat("#", width) + " " + fmt.Sprint(n)
		}
		fmt.Fprintf(&b, "%d %s\n", i+1, bar)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Printer) title(s string) string {
	if !p.color {
		return s
	}
	return titleStyle.Render(s)
}

func (p *Printer) muted(s string) string {
	if !p.color {
		return s
	}
	return mutedStyle.Render(s)
}

func sortedLetters[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
