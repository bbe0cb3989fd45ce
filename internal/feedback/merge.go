// internal/feedback/merge.go
//
// ConstraintMerger: folds one (guess, colors) observation into a State.
//
// Per guess:
//   - Green at i   → Fixed[i] = letter.
//   - Yellow at i  → i becomes an excluded position for the letter, and the
//                    letter's MinCount is raised to the number of Green+Yellow
//                    occurrences it shows in this guess.
//   - Black at i   → the letter is excluded unless this guess proved it
//                    present; in that case the Green+Yellow count becomes a
//                    ceiling and i an excluded position. All copies black on
//                    a letter an earlier guess proved present is a
//                    contradiction.
//
// After the pass, settle reconciles ambiguous records with the fixed slots and
// check enforces the state invariants against the previous state.

package feedback

import (
	"fmt"
	"strings"
)

// Merge returns a new State combining s with one scored guess.
// s itself is never modified, so a failed merge leaves the caller's state intact.
func Merge(s *State, guess string, colors Colors) (*State, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil state", ErrInvariantViolation)
	}
	if n := len(strings.TrimSpace(guess)); n != len(colors) {
		return nil, fmt.Errorf("%w: guess has %d letters, colors has %d", ErrLengthMismatch, n, len(colors))
	}
	w, err := NormalizeWord(guess, s.Length())
	if err != nil {
		return nil, err
	}

	next := s.Clone()

	var green, yellow [alphabet]int
	yellowAt := make(map[byte]Positions)
	blackAt := make(map[byte]Positions)

	for i := 0; i < len(w); i++ {
		l := w[i]
		switch colors[i] {
		case Green:
			if f := next.Fixed[i]; f != 0 && f != l {
				return nil, fmt.Errorf("%w: position %d is fixed to %c, feedback says %c", ErrInvariantViolation, i+1, f, l)
			}
			next.Fixed[i] = l
			green[idx(l)]++
		case Yellow:
			yellow[idx(l)]++
			yellowAt[l] = yellowAt[l].with(i)
		default:
			blackAt[l] = blackAt[l].with(i)
		}
	}

	for l, pos := range yellowAt {
		a := next.ambiguity(l)
		if seen := green[idx(l)] + yellow[idx(l)]; seen > a.MinCount {
			a.MinCount = seen
		}
		for _, p := range pos {
			a.ExcludedPositions = a.ExcludedPositions.with(p)
		}
	}

	for l, pos := range blackAt {
		seen := green[idx(l)] + yellow[idx(l)]
		switch {
		case seen > 0:
			if c, ok := next.Ceiling[l]; !ok || seen < c {
				next.Ceiling[l] = seen
			}
			next.excludeAt(l, pos)
		case next.Known(l):
			// Any copy of a present letter is colored at least once.
			return nil, fmt.Errorf("%w: %c is known present but every copy is black", ErrInvariantViolation, l)
		default:
			next.Excluded[l] = struct{}{}
		}
	}

	next.settle()
	if err := next.check(s); err != nil {
		return nil, err
	}
	return next, nil
}

// ambiguity returns the record for l, creating it if needed.
func (s *State) ambiguity(l byte) *Ambiguity {
	a, ok := s.Ambiguous[l]
	if !ok {
		a = &Ambiguity{}
		s.Ambiguous[l] = a
	}
	return a
}

// excludeAt records positions l cannot occupy, if l has an ambiguous record.
// Letters known only through fixed slots are bounded by their ceiling instead.
func (s *State) excludeAt(l byte, pos Positions) {
	a, ok := s.Ambiguous[l]
	if !ok {
		return
	}
	for _, p := range pos {
		a.ExcludedPositions = a.ExcludedPositions.with(p)
	}
}

// settle raises each ambiguous MinCount to the number of fixed slots holding
// the letter. A letter whose MinCount is then fully covered by fixed slots is
// settled: Outstanding reports zero and Resolved lists it. Its record stays,
// because the excluded positions remain true.
func (s *State) settle() {
	for l, a := range s.Ambiguous {
		if f := s.FixedCount(l); f > a.MinCount {
			a.MinCount = f
		}
	}
}

// check verifies the State invariants, comparing against prev for the
// monotonic ones.
func (s *State) check(prev *State) error {
	for l := range s.Excluded {
		if s.FixedCount(l) > 0 {
			return fmt.Errorf("%w: %c is both excluded and fixed", ErrInvariantViolation, l)
		}
		if _, ok := s.Ambiguous[l]; ok {
			return fmt.Errorf("%w: %c is both excluded and present", ErrInvariantViolation, l)
		}
	}
	for l, a := range s.Ambiguous {
		for _, p := range a.ExcludedPositions {
			if p < len(s.Fixed) && s.Fixed[p] == l {
				return fmt.Errorf("%w: %c is fixed at position %d it was excluded from", ErrInvariantViolation, l, p+1)
			}
		}
		if c, ok := s.Ceiling[l]; ok && c < a.MinCount {
			return fmt.Errorf("%w: %c needs %d occurrences but at most %d are allowed", ErrInvariantViolation, l, a.MinCount, c)
		}
		old, ok := prev.Ambiguous[l]
		if !ok {
			continue
		}
		if a.MinCount < old.MinCount {
			return fmt.Errorf("%w: minimum count of %c dropped from %d to %d", ErrInvariantViolation, l, old.MinCount, a.MinCount)
		}
		for _, p := range old.ExcludedPositions {
			if !a.ExcludedPositions.Has(p) {
				return fmt.Errorf("%w: excluded position %d of %c was lost", ErrInvariantViolation, p+1, l)
			}
		}
	}
	for l, c := range s.Ceiling {
		if f := s.FixedCount(l); c < f {
			return fmt.Errorf("%w: %c is fixed %d times but at most %d are allowed", ErrInvariantViolation, l, f, c)
		}
	}
	return nil
}
