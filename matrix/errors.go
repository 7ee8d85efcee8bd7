package matrix

import "errors"

// Sentinel errors for matrix operations. Algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors in private helpers.
var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows<=0 or cols<=0), or when a flat input length is not divisible
	// by the declared column count.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required by the numeric policy (ingestion, Set, Validate).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeCost signals a negative entry; cost matrices are
	// non-negative by contract.
	ErrNegativeCost = errors.New("matrix: negative cost encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
