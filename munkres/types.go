// Package munkres defines core types, configuration options, and
// sentinel errors for the assignment solver.
package munkres

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrBadShape indicates an empty matrix, a non-positive column count,
	// or a flat length not divisible by the declared column count.
	ErrBadShape = errors.New("munkres: cost matrix shape is invalid")
	// ErrBadCost indicates a non-finite or negative cost value.
	ErrBadCost = errors.New("munkres: costs must be finite and non-negative")
	// ErrNotConverged indicates the solver-step guard was exceeded before a
	// complete assignment was reached. Unreachable for well-formed input;
	// kept as a defense against implementation defects.
	ErrNotConverged = errors.New("munkres: exceeded iteration guard before convergence")
	// ErrCanceled indicates the Yield callback requested early termination.
	ErrCanceled = errors.New("munkres: canceled by yield callback")
)

// Unassigned marks a row without a partner column in Result.Assign.
const Unassigned = 0

// Result holds the outcome of an assignment solve.
type Result struct {
	// Assign maps each row index to its assigned column, 1-based, in row
	// order. Assign[i] == Unassigned (0) means row i has no partner,
	// which can occur only when the matrix has more rows than columns.
	Assign []int

	// Cost is the total cost of the assigned cells, measured against the
	// caller's original (unreduced) costs.
	Cost float64
}

// Options configures an assignment solve.
//   - Into: optional destination buffer for Result.Assign. Reused when
//     cap(Into) suffices; a fresh slice is allocated otherwise.
//   - Yield: cooperative checkpoint invoked once per outer pass, letting
//     an embedding host interleave other work. Returning false cancels
//     the solve with ErrCanceled. Nil means never yield.
//   - MaxIter: upper bound on total solver steps (primes, cover shuffles,
//     cost updates) before ErrNotConverged. 0 derives a bound from the
//     matrix size that well-formed input cannot reach.
type Options struct {
	Into    []int
	Yield   func() bool
	MaxIter int
}

// DefaultOptions returns production-safe defaults: no destination reuse,
// no yield hook, derived step guard.
func DefaultOptions() Options {
	return Options{}
}

// stepBudget resolves the MaxIter guard for an rows×cols working matrix.
// The theoretical step count is bounded by O(rows·(rows+cols)); the
// derived budget stays a comfortable factor above it.
func (o *Options) stepBudget(rows, cols int) int {
	if o != nil && o.MaxIter > 0 {
		return o.MaxIter
	}

	return 4*(rows+1)*(cols+1) + 16
}
