// Package munkres - public entry points for the assignment solver.
//
// This file provides the canonical ways to run a solve:
//
//   - Solve: accept a flat row-major cost slice plus a declared column
//     count, validate shape and numeric policy, then run the driver.
//   - SolveMatrix: accept an already-built *matrix.Dense and delegate to
//     the same driver; the matrix is cloned, never mutated.
//
// Design principles:
//   - Deterministic: fixed scan order, FIFO zero cache, no randomness.
//   - Strict sentinels: only errors from types.go; matrix-package errors
//     are translated at this boundary.
//   - Pure function: all solver state is call-local; the caller's input
//     is never retained or mutated.
package munkres

import (
	"errors"

	"github.com/katalvlaran/hungarian/matrix"
)

// Solve finds the minimum-cost assignment of rows to columns for a flat
// row-major cost slice interpreted as len(costs)/ncols rows by ncols
// columns.
//
// Contracts:
//   - ncols ≥ 1, len(costs) ≥ 1, len(costs) divisible by ncols (ErrBadShape).
//   - Every cost finite and non-negative (ErrBadCost).
//   - opts may be nil; DefaultOptions() semantics apply.
//
// Result.Assign[i] holds the 1-based column assigned to row i, or
// Unassigned (0) when the matrix has more rows than columns and row i
// lost out. Result.Cost totals the assigned cells of the original input.
//
// Errors: ErrBadShape, ErrBadCost, ErrNotConverged, ErrCanceled.
//
// Complexity: O(n²·m) time for n = min(nrows, ncols), m = max of the two;
// O(n·m) memory for the working copy.
func Solve(costs []float64, ncols int, opts *Options) (Result, error) {
	m, err := matrix.FromFlat(costs, ncols)
	if err != nil {
		return Result{}, mapMatrixErr(err)
	}

	return solve(m, costs, ncols, opts)
}

// SolveMatrix runs the assignment solve on an already-built cost matrix.
// The matrix is validated against the numeric policy (a caller may have
// written through Values()) and cloned before solving, so m is returned
// to the caller exactly as it came in.
//
// Errors: ErrBadShape (nil matrix), ErrBadCost, ErrNotConverged, ErrCanceled.
func SolveMatrix(m *matrix.Dense, opts *Options) (Result, error) {
	if m == nil {
		return Result{}, ErrBadShape
	}
	if err := m.Validate(); err != nil {
		return Result{}, mapMatrixErr(err)
	}

	return solve(m, m.Values(), m.Cols(), opts)
}

// solve wires the validated matrix through the driver and assembles the
// caller-facing result.
func solve(m *matrix.Dense, costs []float64, ncols int, opts *Options) (Result, error) {
	s := newSolver(m, opts)
	s.starInitial()

	var yield func() bool
	if opts != nil {
		yield = opts.Yield
	}
	if err := s.run(yield); err != nil {
		return Result{}, err
	}

	return s.assemble(resultBuffer(opts, len(costs)/ncols), costs, ncols), nil
}

// resultBuffer reuses opts.Into when its capacity suffices, otherwise
// allocates a fresh assignment slice of length n.
func resultBuffer(opts *Options, n int) []int {
	if opts != nil && cap(opts.Into) >= n {
		return opts.Into[:n]
	}

	return make([]int, n)
}

// mapMatrixErr translates matrix-package sentinels into the solver's
// error taxonomy: numeric-policy violations become ErrBadCost, every
// structural failure becomes ErrBadShape.
func mapMatrixErr(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) || errors.Is(err, matrix.ErrNegativeCost) {
		return ErrBadCost
	}

	return ErrBadShape
}
