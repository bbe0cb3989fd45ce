// internal/game/assist.go
//
// Solving assistant.
// Responsibilities:
//   - Hold the accumulated ConstraintState and the surviving candidates.
//   - Merge each observed (guess, colors) pair and re-filter.
//   - Rebuild a state from a list of observations (stateless HTTP assist).

package game

import (
	"fmt"

	"github.com/robalobadob/wordle-helper/internal/feedback"
)

// Observation is one guess and the colors the game showed for it.
type Observation struct {
	Guess  string          `json:"guess" validate:"required,alpha"`
	Colors feedback.Colors `json:"colors" validate:"required"`
}

// Assistant narrows a candidate list as feedback comes in.
// A failed Observe leaves the assistant exactly as it was.
type Assistant struct {
	state      *feedback.State
	candidates []string
	history    []Observation
}

// NewAssistant starts from an empty state over candidates.
// Candidates that are malformed or of the wrong length are dropped here.
func NewAssistant(length int, candidates []string) *Assistant {
	s := feedback.NewState(length)
	return &Assistant{
		state:      s,
		candidates: feedback.Filter(candidates, s),
	}
}

// Observe merges one guess and its colors, returning the new candidate list.
func (a *Assistant) Observe(guess string, colors feedback.Colors) ([]string, error) {
	next, err := feedback.Merge(a.state, guess, colors)
	if err != nil {
		return nil, err
	}
	w, _ := feedback.NormalizeWord(guess, a.state.Length()) // validated by Merge
	a.state = next
	a.candidates = feedback.Filter(a.candidates, next)
	a.history = append(a.history, Observation{Guess: w, Colors: colors})
	return a.candidates, nil
}

// ObserveCodes is Observe with the colors typed as an X/Y/G string.
func (a *Assistant) ObserveCodes(guess, codes string) ([]string, error) {
	colors, err := feedback.ParseColors(codes)
	if err != nil {
		return nil, err
	}
	return a.Observe(guess, colors)
}

// Remaining returns the current candidates. Callers must not modify it.
func (a *Assistant) Remaining() []string { return a.candidates }

// Constraints returns the accumulated state. Callers must not modify it.
func (a *Assistant) Constraints() *feedback.State { return a.state }

// History lists the accepted observations in order.
func (a *Assistant) History() []Observation { return a.history }

// Replay folds observations into a fresh state of the given length.
// The first failing observation aborts with its 1-based index in the error.
func Replay(length int, obs []Observation) (*feedback.State, error) {
	s := feedback.NewState(length)
	for i, o := range obs {
		next, err := feedback.Merge(s, o.Guess, o.Colors)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i+1, err)
		}
		s = next
	}
	return s, nil
}
