// internal/feedback/filter.go
//
// CandidateFilter: keeps the words still consistent with a State.

package feedback

// Filter returns, in input order, the words consistent with s.
// The result is never nil. Words are expected uppercase; anything of the
// wrong length or outside A–Z is dropped.
func Filter(words []string, s *State) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if Consistent(w, s) {
			out = append(out, w)
		}
	}
	return out
}

// Consistent reports whether word could still be the answer under s.
func Consistent(word string, s *State) bool {
	if len(word) != s.Length() {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return false
		}
	}
	counts := letterCounts(word)

	// Excluded letters may appear only as often as fixed and ambiguous
	// knowledge accounts for, which the invariants keep at zero.
	for l := range s.Excluded {
		if counts[idx(l)] > s.FixedCount(l)+s.Outstanding(l) {
			return false
		}
	}
	for l, c := range s.Ceiling {
		if counts[idx(l)] > c {
			return false
		}
	}

	for i, f := range s.Fixed {
		if f != 0 && word[i] != f {
			return false
		}
	}

	for l, a := range s.Ambiguous {
		for _, p := range a.ExcludedPositions {
			if p < len(word) && word[p] == l {
				return false
			}
		}
		if counts[idx(l)] < s.FixedCount(l)+s.Outstanding(l) {
			return false
		}
	}
	return true
}
