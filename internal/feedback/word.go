package feedback

import (
	"fmt"
	"strings"
)

// alphabet is the size of the letter set (A–Z).
const alphabet = 26

// NormalizeWord trims and uppercases s, then checks it is made of A–Z only.
// If length > 0 the word must also have exactly that many letters.
func NormalizeWord(s string, length int) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if length > 0 && len(w) != length {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrLengthMismatch, w, len(w), length)
	}
	for i := 0; i < len(w); i++ {
		if !isLetter(w[i]) {
			return "", fmt.Errorf("%w: %q at position %d of %q", ErrInvalidCharacter, w[i], i+1, w)
		}
	}
	return w, nil
}

// isLetter reports whether b is an uppercase ASCII letter.
func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }

// idx maps an uppercase letter to 0..25.
// Callers validate input with NormalizeWord first.
func idx(b byte) int { return int(b - 'A') }

// letterCounts tallies every letter of an already-normalized word.
func letterCounts(w string) [alphabet]int {
	var counts [alphabet]int
	for i := 0; i < len(w); i++ {
		counts[idx(w[i])]++
	}
	return counts
}
