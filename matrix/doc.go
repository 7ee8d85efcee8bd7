// Package matrix provides dense cost-matrix primitives for assignment
// solving: construction from flat row-major data, cloning, logical
// transposition, and row-minimum reduction.
//
// Dense is the single concrete type: a row-major matrix of float64
// values backed by one flat slice for cache friendliness. Entries are
// costs and must satisfy the numeric policy — finite and non-negative —
// enforced at ingestion (FromFlat) and on Set.
//
// # API
//
//	m, err := matrix.FromFlat(costs, ncols) // validate + copy
//	t := m.Transposed()                     // row-major copy, swapped strides
//	m.ReduceRows()                          // subtract each row's minimum in place
//	v, err := m.At(i, j)                    // bounds-checked read
//	raw := m.Values()                       // live flat view for hot loops
//
// # Errors
//
//	ErrBadShape     - non-positive dimensions, or a flat length not
//	                  divisible by the declared column count.
//	ErrOutOfRange   - row or column index outside valid bounds.
//	ErrNaNInf       - NaN or ±Inf encountered where finite values are required.
//	ErrNegativeCost - a negative entry encountered at ingestion or validation.
//	ErrNilMatrix    - a nil *Dense receiver or argument.
//
// All sentinels are matched via errors.Is; no method panics on
// user-triggered conditions.
package matrix
