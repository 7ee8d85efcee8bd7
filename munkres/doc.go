// Package munkres implements the Munkres (Kuhn–Munkres, "Hungarian")
// algorithm for the minimum-cost assignment problem on a dense
// non-negative cost matrix.
//
// Given n rows and m columns of pairwise costs, Solve finds a
// one-to-one mapping of rows to columns minimizing total cost — a
// maximal matching when the matrix is rectangular.
//
// # Algorithm Outline
//
//  1. Reduce: subtract each row's minimum, so every row holds a zero.
//  2. Star: greedily star one zero per row where the column is free;
//     a starred zero is a tentatively assigned cell.
//  3. Check: cover every column containing a starred zero. When the
//     covered count reaches min(n, m), the stars are the answer.
//  4. Prime: find an uncovered zero and prime it. If its row carries a
//     star, cover the row and uncover the star's column, shrinking the
//     search space; otherwise the primed zero starts an augmenting path
//     of alternating primes and stars whose flip grows the matching by
//     one. Clear primes and coverage, return to step 3.
//  5. Update: when no uncovered zero exists, let vmin be the minimum
//     uncovered cost; add vmin at covered∩covered, subtract it at
//     uncovered∩uncovered. At least one new uncovered zero appears.
//     Return to step 4.
//
// Rectangular matrices with more rows than columns are transposed
// internally so the solve always runs with ncols ≥ nrows; the result is
// mapped back before reporting.
//
// # Determinism
//
// Equal-cost ties always break the same way: scans run in a fixed
// order and the zero cache is FIFO. The same input always yields the
// same assignment.
//
// # API
//
// Options configures a solve:
//
//	type Options struct {
//	    Into    []int       // optional destination for Result.Assign
//	    Yield   func() bool // once per outer pass; return false to cancel
//	    MaxIter int         // solver-step guard; 0 = derived default
//	}
//
// Use DefaultOptions() for production-safe defaults. The entry points:
//
//	func Solve(costs []float64, ncols int, opts *Options) (Result, error)
//	func SolveMatrix(m *matrix.Dense, opts *Options) (Result, error)
//
// Result.Assign[i] holds the 1-based column assigned to row i, or
// Unassigned (0) when row i has no partner (possible only with more
// rows than columns). Result.Cost is the total over the caller's
// original costs; the input is never mutated.
//
// # Errors
//
//	ErrBadShape     - empty matrix, ncols < 1, or length not divisible by ncols.
//	ErrBadCost      - non-finite or negative cost value.
//	ErrNotConverged - solver-step guard exceeded (defensive; unreachable
//	                  for well-formed input).
//	ErrCanceled     - the Yield callback requested termination.
//
// # Complexity
//
//	Time:   O(n²·m) for n = min rows/cols side, m = the larger side.
//	Memory: O(n·m) for the working copy, O(n+m) for the bookkeeping.
package munkres
