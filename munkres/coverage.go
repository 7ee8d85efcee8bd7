package munkres

// coverSet partitions the indices 0..n-1 into a covered prefix and an
// uncovered suffix of a single order slice, with a position lookup so
// each toggle is a constant-time swap with the partition boundary.
//
// Invariant: order is always a permutation of 0..n-1, pos[order[k]] == k,
// and order[:covered] / order[covered:] are the covered / uncovered sets.
type coverSet struct {
	order   []int // covered prefix [0:covered), uncovered suffix [covered:n)
	pos     []int // pos[idx] = current slot of idx within order
	covered int   // size of the covered prefix
}

// newCoverSet returns a coverSet over 0..n-1 with everything uncovered.
// Complexity: O(n).
func newCoverSet(n int) *coverSet {
	s := &coverSet{order: make([]int, n), pos: make([]int, n)}
	var i int
	for i = 0; i < n; i++ {
		s.order[i] = i
		s.pos[i] = i
	}

	return s
}

// IsCovered reports whether idx is currently covered. Complexity: O(1).
func (s *coverSet) IsCovered(idx int) bool {
	return s.pos[idx] < s.covered
}

// Cover moves idx into the covered prefix, reporting whether it was newly
// covered (false means idempotent no-op). Callers use the report to
// decide whether cached zeros touching idx need purging.
// Complexity: O(1) via boundary swap.
func (s *coverSet) Cover(idx int) bool {
	p := s.pos[idx]
	if p < s.covered {
		return false
	}
	s.swap(p, s.covered)
	s.covered++

	return true
}

// Uncover moves idx back into the uncovered suffix, reporting whether it
// was newly uncovered. Complexity: O(1) via boundary swap.
func (s *coverSet) Uncover(idx int) bool {
	p := s.pos[idx]
	if p >= s.covered {
		return false
	}
	s.covered--
	s.swap(p, s.covered)

	return true
}

// CoveredCount returns the size of the covered set. Complexity: O(1).
func (s *coverSet) CoveredCount() int { return s.covered }

// CoveredView returns the live covered prefix. The slice aliases internal
// storage and is invalidated by the next toggle. Complexity: O(1).
func (s *coverSet) CoveredView() []int { return s.order[:s.covered] }

// UncoveredView returns the live uncovered suffix. The slice aliases
// internal storage and is invalidated by the next toggle. Complexity: O(1).
func (s *coverSet) UncoveredView() []int { return s.order[s.covered:] }

// Clear resets every index to uncovered. The permutation order is kept
// as-is; only the boundary moves, so Clear is O(1) and later scans stay
// deterministic for a given toggle history.
func (s *coverSet) Clear() { s.covered = 0 }

// swap exchanges two slots of order and fixes the position lookup.
func (s *coverSet) swap(a, b int) {
	if a == b {
		return
	}
	s.order[a], s.order[b] = s.order[b], s.order[a]
	s.pos[s.order[a]] = a
	s.pos[s.order[b]] = b
}
