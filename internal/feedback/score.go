// internal/feedback/score.go
//
// Scorer: (guess, answer) → Colors.
//
// Implements the standard two-pass algorithm:
//   Pass 1: mark exact matches Green and count the unmatched answer letters.
//   Pass 2: scan left to right; a non-green guess letter is Yellow while an
//           unmatched occurrence remains (consuming it), Black otherwise.
//
// Earlier occurrences of a repeated guess letter are resolved first, so a
// letter is never colored more often than it appears in the answer.

package feedback

import (
	"fmt"
	"strings"
)

// Score compares guess against answer. Both are normalized to uppercase.
func Score(guess, answer string) (Colors, error) {
	g, a, err := normalizePair(guess, answer)
	if err != nil {
		return nil, err
	}

	n := len(g)
	out := make(Colors, n)

	// Pass 1: greens, and frequency of answer letters left unmatched.
	var unmatched [alphabet]int
	for i := 0; i < n; i++ {
		if g[i] == a[i] {
			out[i] = Green
		} else {
			unmatched[idx(a[i])]++
		}
	}

	// Pass 2: yellows consume the shared count greedily.
	for i := 0; i < n; i++ {
		if out[i] == Green {
			continue
		}
		j := idx(g[i])
		if unmatched[j] > 0 {
			out[i] = Yellow
			unmatched[j]--
		} else {
			out[i] = Black
		}
	}
	return out, nil
}

// normalizePair checks lengths before letters so a short guess reports a
// length mismatch rather than a character error.
func normalizePair(guess, answer string) (string, string, error) {
	g := strings.TrimSpace(guess)
	a := strings.TrimSpace(answer)
	if len(g) != len(a) {
		return "", "", fmt.Errorf("%w: guess has %d letters, answer has %d", ErrLengthMismatch, len(g), len(a))
	}
	g, err := NormalizeWord(g, len(a))
	if err != nil {
		return "", "", fmt.Errorf("guess: %w", err)
	}
	a, err = NormalizeWord(a, len(g))
	if err != nil {
		return "", "", fmt.Errorf("answer: %w", err)
	}
	return g, a, nil
}
