// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create new games (default 6 rows, word length taken from the lexicon).
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses with feedback.Score.
//   - Feed every verdict to the Assistant when assist mode is on.
//   - Track state transitions: playing → won/lost.

package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/words"
)

const defaultRows = 6

// New constructs a new game over lex.
// If s.Answer is empty, a random answer is chosen from the lexicon.
func New(lex *words.Lexicon, s Settings) (*Game, error) {
	ans := s.Answer
	if ans == "" {
		ans = lex.RandomAnswer()
	}
	ans, err := feedback.NormalizeWord(ans, lex.Length())
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	rows := s.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	g := &Game{
		ID:       uuid.NewString(),
		Answer:   ans,
		Rows:     rows,
		Cols:     lex.Length(),
		Guesses:  []string{},
		Practice: s.Practice,
		lex:      lex,
	}
	if s.Assist {
		g.helper = NewAssistant(lex.Length(), lex.Candidates(s.Curated))
	}
	return g, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters A–Z (any case).
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - All tiles Green → Finished, Won.
//   - Else reaching g.Rows guesses → Finished (loss).
func (g *Game) ApplyGuess(guess string) (Turn, error) {
	if g.Finished {
		return Turn{State: g.State()}, ErrFinished
	}
	w, err := feedback.NormalizeWord(guess, g.Cols)
	if err != nil {
		return Turn{State: g.State()}, err
	}
	if !g.lex.IsAllowed(w) {
		return Turn{State: g.State()}, fmt.Errorf("%w: %s", ErrNotInWordList, w)
	}

	colors, err := feedback.Score(w, g.Answer)
	if err != nil {
		return Turn{State: g.State()}, err
	}

	var remaining []string
	if g.helper != nil {
		// Feedback from the real answer always merges cleanly.
		if remaining, err = g.helper.Observe(w, colors); err != nil {
			return Turn{State: g.State()}, err
		}
	}

	g.Guesses = append(g.Guesses, w)
	g.Colors = append(g.Colors, colors)
	if colors.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}

	return Turn{
		Colors:    colors,
		Number:    len(g.Guesses),
		State:     g.State(),
		Remaining: remaining,
	}, nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Outcome reports whether the answer was matched and on which guess.
// guesses is the number of guesses used so far.
func (g *Game) Outcome() (won bool, guesses int) {
	return g.Won, len(g.Guesses)
}

// Assistant returns the helper tracking this game, or nil when assist is off.
func (g *Game) Assistant() *Assistant { return g.helper }
