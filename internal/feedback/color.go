// internal/feedback/color.go
//
// Per-letter verdicts produced by the scorer.
// Defines:
//   - Color: GREEN / YELLOW / BLACK for a single position.
//   - Colors: one Color per guess position, with the G/Y/X text form
//     used at every boundary (CLI input, JSON payloads, logs).

package feedback

import (
	"fmt"
	"strings"
)

// Color is the evaluation result for a single letter of a guess.
//   - Green:  letter is correct and in the correct position.
//   - Yellow: letter exists in the answer but in a different position.
//   - Black:  letter has no further occurrences in the answer.
type Color uint8

const (
	Black Color = iota
	Yellow
	Green
)

// Code returns the single-character boundary code (X, Y or G).
func (c Color) Code() byte {
	switch c {
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	default:
		return 'X'
	}
}

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "black"
	}
}

// ParseColor maps a boundary code to a Color. Codes are case-insensitive.
func ParseColor(b byte) (Color, error) {
	switch b {
	case 'G', 'g':
		return Green, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'X', 'x':
		return Black, nil
	}
	return Black, fmt.Errorf("%w: color code %q (want G, Y or X)", ErrInvalidCharacter, b)
}

// Colors is the verdict for a whole guess, one entry per position.
type Colors []Color

// ParseColors parses a code string such as "XGYYG".
// Surrounding whitespace is ignored.
func ParseColors(s string) (Colors, error) {
	s = strings.TrimSpace(s)
	out := make(Colors, len(s))
	for i := 0; i < len(s); i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// String renders the code form, e.g. "XGYYG".
func (cs Colors) String() string {
	b := make([]byte, len(cs))
	for i, c := range cs {
		b[i] = c.Code()
	}
	return string(b)
}

// Solved reports true if every position is Green.
func (cs Colors) Solved() bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if c != Green {
			return false
		}
	}
	return true
}

// Count returns how many positions carry color c.
func (cs Colors) Count(c Color) int {
	n := 0
	for _, x := range cs {
		if x == c {
			n++
		}
	}
	return n
}

// MarshalText encodes Colors as its code string so JSON payloads read "XGYYG".
func (cs Colors) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (cs *Colors) UnmarshalText(b []byte) error {
	parsed, err := ParseColors(string(b))
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}
