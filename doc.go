// Package hungarian solves the assignment problem: given an n×m matrix
// of non-negative costs, find the one-to-one mapping of rows to columns
// that minimizes total cost.
//
// 🚀 What is hungarian?
//
//	A small, deterministic implementation of the Munkres (Kuhn–Munkres,
//	"Hungarian") algorithm with:
//		• O(n³) worst-case running time on square matrices
//		• Rectangular support (any n×m) via internal transposition
//		• O(1) swap-based row/column cover bookkeeping
//		• A zero cache that short-circuits full-matrix rescans
//		• A cooperative yield hook for embedding hosts (with cancellation)
//
// ✨ Why choose hungarian?
//
//   - Pure function – no global state, safe for concurrent callers
//   - Strict sentinels – every failure mode is a documented error
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – equal-cost ties always break the same way
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  — dense row-major cost-matrix primitives (build, reduce, transpose)
//	munkres/ — the solver: coverage tracker, star/prime ledgers, driver loop
//
// Quick example:
//
//	costs := []float64{
//	    4, 2, 8,
//	    4, 3, 7,
//	    3, 1, 6,
//	}
//	res, err := munkres.Solve(costs, 3, nil)
//	// res.Assign == [2 3 1] (1-based columns), res.Cost == 12
//
//	go get github.com/katalvlaran/hungarian/munkres
package hungarian
