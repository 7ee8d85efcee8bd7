package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major cost matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromFlat builds a Dense cost matrix from a flat row-major slice with
// the declared column count. The input is copied; the caller's slice is
// never retained or mutated.
// Stage 1 (Validate): ncols ≥ 1, len(values) ≥ 1, len(values) divisible by ncols.
// Stage 2 (Policy): every entry must be finite (ErrNaNInf) and
// non-negative (ErrNegativeCost).
// Stage 3 (Finalize): copy into fresh backing storage.
// Complexity: O(len(values)) time and memory.
func FromFlat(values []float64, ncols int) (*Dense, error) {
	if ncols < 1 || len(values) == 0 || len(values)%ncols != 0 {
		return nil, ErrBadShape
	}
	var v float64
	for _, v = range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
		if v < 0 {
			return nil, ErrNegativeCost
		}
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{r: len(values) / ncols, c: ncols, data: data}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("matrix: Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) with bounds checking. NaN and ±Inf
// are rejected per the numeric policy; negative values are rejected per
// the cost contract.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeCost
	}
	m.data[idx] = v

	return nil
}

// Values returns the live flat backing slice in row-major order.
// Intended for hot loops that have already validated their indices;
// mutations through the returned slice bypass the numeric policy, so
// callers own the non-negativity invariant while they hold the view.
// Complexity: O(1).
func (m *Dense) Values() []float64 { return m.data }

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Transposed returns a new c×r matrix with swapped strides:
// out[j][i] == m[i][j]. The receiver is not mutated.
// Complexity: O(r*c) time and memory.
func (m *Dense) Transposed() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// RowMin returns the minimum value in the given row.
// Complexity: O(c).
func (m *Dense) RowMin(row int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("matrix: Dense.RowMin(%d): %w", row, ErrOutOfRange)
	}
	base := row * m.c
	low := m.data[base]
	var j int
	for j = 1; j < m.c; j++ {
		if m.data[base+j] < low {
			low = m.data[base+j]
		}
	}

	return low, nil
}

// ReduceRows subtracts each row's minimum from every entry of that row,
// in place. Afterwards every row contains at least one zero; the optimal
// assignment is preserved because a constant shift of a full row does
// not change which assignment is optimal. Idempotent: a second call is
// a no-op (every row minimum is already zero).
// Complexity: O(r*c) time, O(1) memory.
func (m *Dense) ReduceRows() {
	var (
		i, j, base int
		low        float64
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		low = m.data[base]
		for j = 1; j < m.c; j++ {
			if m.data[base+j] < low {
				low = m.data[base+j]
			}
		}
		if low == 0 {
			continue
		}
		for j = 0; j < m.c; j++ {
			m.data[base+j] -= low
		}
	}
}

// Validate re-checks the numeric policy over every entry: finite
// (ErrNaNInf) and non-negative (ErrNegativeCost). Useful after a caller
// has mutated the backing storage through Values().
// Complexity: O(r*c).
func (m *Dense) Validate() error {
	var v float64
	for _, v = range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeCost
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
