// internal/feedback/state.go
//
// ConstraintState: everything learned about the answer so far in one game.
//
//   - Fixed:     per-position letters proven by Green tiles (0 = unknown).
//   - Ambiguous: letters proven present but not pinned down, each with the
//                fewest total occurrences the answer must hold and the
//                positions the letter is known not to occupy.
//   - Excluded:  letters proven absent.
//   - Ceiling:   upper bound on occurrences, learned when a letter is Black
//                in the same guess that shows it Green or Yellow.
//
// A State is created by NewState, replaced once per guess by Merge and only
// read afterwards. Merge never mutates its input.

package feedback

import (
	"sort"
	"strings"
)

// Positions is a sorted set of 0-based word indexes.
type Positions []int

// Has reports whether p contains i.
func (p Positions) Has(i int) bool {
	k := sort.SearchInts(p, i)
	return k < len(p) && p[k] == i
}

// with returns p ∪ {i}, keeping order.
func (p Positions) with(i int) Positions {
	k := sort.SearchInts(p, i)
	if k < len(p) && p[k] == i {
		return p
	}
	out := make(Positions, 0, len(p)+1)
	out = append(out, p[:k]...)
	out = append(out, i)
	return append(out, p[k:]...)
}

// Ambiguity is what is known about a letter that is present in the answer.
type Ambiguity struct {
	// MinCount is the fewest occurrences the answer must contain in total,
	// fixed slots included. It never decreases.
	MinCount int `json:"minCount"`
	// ExcludedPositions are indexes the letter is known not to occupy.
	ExcludedPositions Positions `json:"excludedPositions"`
}

// State is the cumulative constraint knowledge for one game.
type State struct {
	Fixed     []byte              `json:"-"`
	Ambiguous map[byte]*Ambiguity `json:"-"`
	Excluded  map[byte]struct{}   `json:"-"`
	Ceiling   map[byte]int        `json:"-"`
}

// NewState returns an empty state for words of the given length.
func NewState(length int) *State {
	if length < 0 {
		length = 0
	}
	return &State{
		Fixed:     make([]byte, length),
		Ambiguous: make(map[byte]*Ambiguity),
		Excluded:  make(map[byte]struct{}),
		Ceiling:   make(map[byte]int),
	}
}

// Length is the word length the state was built for.
func (s *State) Length() int { return len(s.Fixed) }

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := &State{
		Fixed:     append([]byte(nil), s.Fixed...),
		Ambiguous: make(map[byte]*Ambiguity, len(s.Ambiguous)),
		Excluded:  make(map[byte]struct{}, len(s.Excluded)),
		Ceiling:   make(map[byte]int, len(s.Ceiling)),
	}
	for l, a := range s.Ambiguous {
		c.Ambiguous[l] = &Ambiguity{
			MinCount:          a.MinCount,
			ExcludedPositions: append(Positions(nil), a.ExcludedPositions...),
		}
	}
	for l := range s.Excluded {
		c.Excluded[l] = struct{}{}
	}
	for l, n := range s.Ceiling {
		c.Ceiling[l] = n
	}
	return c
}

// FixedCount is how many fixed slots hold letter l.
func (s *State) FixedCount(l byte) int {
	n := 0
	for _, f := range s.Fixed {
		if f == l {
			n++
		}
	}
	return n
}

// Outstanding is how many occurrences of l must still appear outside the
// fixed slots. Zero once Green tiles fully explain the letter.
func (s *State) Outstanding(l byte) int {
	a, ok := s.Ambiguous[l]
	if !ok {
		return 0
	}
	if n := a.MinCount - s.FixedCount(l); n > 0 {
		return n
	}
	return 0
}

// IsExcluded reports whether l is proven absent.
func (s *State) IsExcluded(l byte) bool {
	_, ok := s.Excluded[l]
	return ok
}

// Known reports whether l is proven present (fixed or ambiguous).
func (s *State) Known(l byte) bool {
	if _, ok := s.Ambiguous[l]; ok {
		return true
	}
	return s.FixedCount(l) > 0
}

// Resolved lists ambiguous letters whose presence is fully explained by
// fixed slots, alphabetically.
func (s *State) Resolved() []byte {
	var out []byte
	for _, l := range sortedKeys(s.Ambiguous) {
		if s.Outstanding(l) == 0 {
			out = append(out, l)
		}
	}
	return out
}

// Pattern renders the fixed slots, e.g. "_R__E".
func (s *State) Pattern() string {
	b := make([]byte, len(s.Fixed))
	for i, f := range s.Fixed {
		if f == 0 {
			b[i] = '_'
		} else {
			b[i] = f
		}
	}
	return string(b)
}

// ExcludedLetters returns the excluded set alphabetically.
func (s *State) ExcludedLetters() string {
	out := make([]byte, 0, len(s.Excluded))
	for l := range s.Excluded {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}

// Empty reports whether nothing has been learned yet.
func (s *State) Empty() bool {
	return strings.Trim(s.Pattern(), "_") == "" &&
		len(s.Ambiguous) == 0 && len(s.Excluded) == 0 && len(s.Ceiling) == 0
}

// Snapshot is the JSON view of a State.
type Snapshot struct {
	Pattern   string               `json:"pattern"`
	Ambiguous map[string]Ambiguity `json:"ambiguous"`
	Excluded  string               `json:"excluded"`
	Ceiling   map[string]int       `json:"ceiling,omitempty"`
}

// Snapshot returns a read-only, serialisable copy.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Pattern:   s.Pattern(),
		Ambiguous: make(map[string]Ambiguity, len(s.Ambiguous)),
		Excluded:  s.ExcludedLetters(),
	}
	for l, a := range s.Ambiguous {
		snap.Ambiguous[string(l)] = Ambiguity{
			MinCount:          a.MinCount,
			ExcludedPositions: append(Positions{}, a.ExcludedPositions...),
		}
	}
	if len(s.Ceiling) > 0 {
		snap.Ceiling = make(map[string]int, len(s.Ceiling))
		for l, n := range s.Ceiling {
			snap.Ceiling[string(l)] = n
		}
	}
	return snap
}

func sortedKeys(m map[byte]*Ambiguity) []byte {
	keys := make([]byte, 0, len(m))
	for l := range m {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
