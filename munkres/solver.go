package munkres

import (
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// solver owns all mutable state of one in-flight solve: the reduced
// (possibly transposed) working costs plus the cover, star, prime, and
// zero-cache bookkeeping. Everything is call-local; concurrent Solve
// calls never share state.
type solver struct {
	work       []float64 // working costs, row-major, rows*cols
	rows, cols int       // working dimensions; rows <= cols always holds
	transposed bool      // working matrix is the transpose of the input

	rowCover *coverSet
	colCover *coverSet
	stars    *starLedger
	primes   *primeLedger
	zeros    zeroQueue

	steps  int // solver steps consumed (primes, shuffles, updates)
	budget int // step guard; exceeding it yields ErrNotConverged
}

// newSolver builds call-local state from a validated cost matrix.
// Stage 1 (Orient): transpose when the input is taller than wide, so the
// solve always runs with cols ≥ rows; otherwise clone, keeping the
// caller's matrix untouched.
// Stage 2 (Reduce): subtract each row's minimum, guaranteeing a zero per row.
// Stage 3 (Allocate): size the coverage sets and ledgers to the working shape.
// Complexity: O(rows·cols) time and memory.
func newSolver(m *matrix.Dense, opts *Options) *solver {
	var (
		wm *matrix.Dense
		tr bool
	)
	if m.Cols() < m.Rows() {
		wm = m.Transposed()
		tr = true
	} else {
		wm = m.Clone()
	}
	wm.ReduceRows()

	s := &solver{
		work:       wm.Values(),
		rows:       wm.Rows(),
		cols:       wm.Cols(),
		transposed: tr,
		rowCover:   newCoverSet(wm.Rows()),
		colCover:   newCoverSet(wm.Cols()),
		stars:      newStarLedger(wm.Rows(), wm.Cols()),
		primes:     newPrimeLedger(wm.Rows()),
	}
	s.budget = opts.stepBudget(s.rows, s.cols)

	return s
}

// at reads the working cost at (r, c) without bounds checking; the
// solver only ever addresses indices it has just enumerated.
func (s *solver) at(r, c int) float64 { return s.work[r*s.cols+c] }

// starInitial stars each row's leftmost zero whose column is still free.
// The left-to-right scan fixes tie-breaking, so equal inputs always seed
// the same star set.
// Complexity: O(rows·cols).
func (s *solver) starInitial() {
	var r, c, base int
	for r = 0; r < s.rows; r++ {
		base = r * s.cols
		for c = 0; c < s.cols; c++ {
			if s.work[base+c] == 0 && s.stars.ColStar(c) == none {
				s.stars.Star(r, c)
				break
			}
		}
	}
}

// findZero scans the uncovered rows × uncovered columns submatrix for
// its minimum cost, exiting early on the first true zero (later cells
// cannot beat zero). found==false means no uncovered zero exists and
// vmin carries the positive minimum that drives the next dual update.
// Complexity: O(uncovered_rows · uncovered_cols) — the dominant cost of
// the algorithm, which is exactly what the zero cache short-circuits.
func (s *solver) findZero() (r, c int, vmin float64, found bool) {
	vmin = math.Inf(1)
	var (
		i, j, base int
		v          float64
	)
	for _, i = range s.rowCover.UncoveredView() {
		base = i * s.cols
		for _, j = range s.colCover.UncoveredView() {
			v = s.work[base+j]
			if v == 0 {
				return i, j, 0, true
			}
			if v < vmin {
				vmin, r, c = v, i, j
			}
		}
	}

	return r, c, vmin, false
}

// uncoveredZero yields the next uncovered zero, consuming the zero cache
// first. Cached cells are validated against live state — coverage may
// have swallowed them and cost updates may have overwritten them — and
// stale entries are dropped. Falls back to the full findZero scan.
func (s *solver) uncoveredZero() (r, c int, vmin float64, found bool) {
	var (
		z  cell
		ok bool
	)
	for {
		z, ok = s.zeros.Pop()
		if !ok {
			break
		}
		if s.rowCover.IsCovered(z.r) || s.colCover.IsCovered(z.c) {
			continue
		}
		if s.at(z.r, z.c) != 0 {
			continue // stale: overwritten since it was cached
		}

		return z.r, z.c, 0, true
	}

	return s.findZero()
}

// updateCosts applies the dual adjustment for vmin, the minimum cost
// among uncovered cells: add vmin at covered-row ∩ covered-column cells,
// subtract it at uncovered ∩ uncovered cells, and leave singly-covered
// cells untouched. Every cell reaching zero is enqueued, so the next
// priming round skips the full rescan. Feasibility is preserved: vmin is
// the uncovered minimum, so no subtraction can go below zero.
// Complexity: O(rows·cols) worst case.
func (s *solver) updateCosts(vmin float64) {
	var (
		i, j, base int
		v          float64
	)
	for _, i = range s.rowCover.CoveredView() {
		base = i * s.cols
		for _, j = range s.colCover.CoveredView() {
			s.work[base+j] += vmin
		}
	}
	for _, i = range s.rowCover.UncoveredView() {
		base = i * s.cols
		for _, j = range s.colCover.UncoveredView() {
			v = s.work[base+j] - vmin
			s.work[base+j] = v
			if v == 0 {
				s.zeros.Push(i, j)
			}
		}
	}
}

// augment flips the alternating path of primed and starred zeros that
// starts at the primed zero (r, c) in a star-free row, growing the
// matching by exactly one. Walk: star the current prime; if its column
// held a star, hop to that row's prime and repeat until a column with no
// prior star terminates the path. Star overwrites the byCol view
// immediately; the displaced row's stale byRow entry is repaired on the
// very next hop.
// Complexity: O(path length) ≤ O(rows).
func (s *solver) augment(r, c int) {
	var prior int
	for {
		prior = s.stars.ColStar(c)
		s.stars.Star(r, c)
		if prior == none {
			break
		}
		r = prior
		c = s.primes.RowPrime(r)
	}
}

// run drives the CHECKING → PRIMING → UPDATING state machine to
// convergence: nil once the starred zeros cover min(rows, cols) columns,
// ErrCanceled when yield declines to continue, ErrNotConverged if the
// step guard trips (defensive; unreachable for well-formed input, since
// each dual update strictly shrinks the uncovered potential and the star
// count never decreases).
func (s *solver) run(yield func() bool) error {
	var (
		r, c, starCol int
		vmin          float64
		found         bool
	)
	for {
		// Cooperative checkpoint, once per outer pass.
		if yield != nil && !yield() {
			return ErrCanceled
		}

		// CHECKING: cover every column holding a starred zero.
		for c = 0; c < s.cols; c++ {
			if s.stars.ColStar(c) != none {
				s.colCover.Cover(c)
			}
		}
		if s.colCover.CoveredCount() >= s.rows {
			return nil // complete star cover reached
		}

		// PRIMING / UPDATING until a path augments the star set.
		for {
			s.steps++
			if s.steps > s.budget {
				return ErrNotConverged
			}

			r, c, vmin, found = s.uncoveredZero()
			if !found {
				// UPDATING: no uncovered zero — adjust duals and retry.
				s.updateCosts(vmin)
				continue
			}

			s.primes.Prime(r, c)
			starCol = s.stars.RowStar(r)
			if starCol != none {
				// The primed row already carries a star: trade coverage to
				// shrink the uncovered search space and keep hunting.
				if s.rowCover.Cover(r) {
					s.zeros.PurgeRow(r)
				}
				s.colCover.Uncover(starCol)

				continue
			}

			// Star-free row: (r, c) starts an augmenting path.
			s.augment(r, c)
			s.primes.Clear()
			s.rowCover.Clear()
			s.colCover.Clear()

			break // back to CHECKING; stars persist
		}
	}
}

// assemble maps the final star set back to the caller's orientation and
// totals the assigned cost against the original (unreduced) input.
// dst must have length nrows of the original matrix.
func (s *solver) assemble(dst []int, costs []float64, ncols int) Result {
	var i, c int
	for i = range dst {
		dst[i] = Unassigned
	}
	if s.transposed {
		// Working row r is original column r; its star names the original row.
		for i = 0; i < s.rows; i++ {
			if c = s.stars.RowStar(i); c != none {
				dst[c] = i + 1
			}
		}
	} else {
		for i = 0; i < s.rows; i++ {
			if c = s.stars.RowStar(i); c != none {
				dst[i] = c + 1
			}
		}
	}

	res := Result{Assign: dst}
	for i = range dst {
		if dst[i] != Unassigned {
			res.Cost += costs[i*ncols+dst[i]-1]
		}
	}

	return res
}
