// internal/game/types.go
//
// Core type definitions for a game session.
// Defines:
//   - Game: state for a single in-progress or finished game.
//   - Turn: what one accepted guess produced.
//   - Settings: how a new game is set up.

package game

import (
	"errors"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// Coarse game states reported to callers.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

var (
	ErrFinished      = errors.New("game finished")
	ErrNotInWordList = errors.New("not in word list")
)

// Settings configures New.
type Settings struct {
	Answer  string // fixed answer (testing, daily mode); random when empty
	Rows    int    // maximum guesses; defaultRows when 0
	Assist  bool   // track constraints and candidates after every guess
	Curated bool   // assist candidates come from the answers list only
	// Practice marks a game whose answer the player picked; it is not
	// counted in stats.
	Practice bool
}

// Game holds the state of a single session.
type Game struct {
	ID       string            // Unique game identifier (UUID).
	Answer   string            // The solution word (uppercase).
	Rows     int               // Maximum number of guesses allowed (typically 6).
	Cols     int               // Number of letters per word (typically 5).
	Guesses  []string          // Guesses made so far (uppercase).
	Colors   []feedback.Colors // Verdict for each guess, same order.
	Finished bool              // True once the game is over (won or lost).
	Won      bool              // True if the game was finished with a win.
	Practice bool              // Answer chosen by the player; results are not recorded.

	lex    *words.Lexicon
	helper *Assistant // nil unless Settings.Assist
}

// Turn is the result of one accepted guess.
type Turn struct {
	Colors    feedback.Colors `json:"colors"`
	Number    int             `json:"number"` // 1-based guess index
	State     string          `json:"state"`  // playing | won | lost
	Remaining []string        `json:"remaining,omitempty"`
}
