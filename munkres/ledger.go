package munkres

// none marks the absence of a star or prime in a ledger slot.
const none = -1

// cell addresses one matrix entry by row and column.
type cell struct {
	r, c int
}

// starLedger records the current tentative assignment: for each row the
// column of its starred zero, and for each column the row of its starred
// zero. Invariant: at most one star per row and per column; byRow and
// byCol describe the same star set from both sides.
type starLedger struct {
	byRow []int // byRow[r] = starred column in row r, or none
	byCol []int // byCol[c] = starred row in column c, or none
}

// newStarLedger returns an empty ledger for a rows×cols matrix.
func newStarLedger(rows, cols int) *starLedger {
	l := &starLedger{byRow: make([]int, rows), byCol: make([]int, cols)}
	var i int
	for i = range l.byRow {
		l.byRow[i] = none
	}
	for i = range l.byCol {
		l.byCol[i] = none
	}

	return l
}

// Star marks (r, c) as a starred zero, overwriting both views.
// Callers own the one-star-per-row/column invariant; during path
// augmentation a transiently stale byRow entry is repaired on the next
// hop (see solver.augment).
func (l *starLedger) Star(r, c int) {
	l.byRow[r] = c
	l.byCol[c] = r
}

// RowStar returns the starred column in row r, or none.
func (l *starLedger) RowStar(r int) int { return l.byRow[r] }

// ColStar returns the starred row in column c, or none.
func (l *starLedger) ColStar(c int) int { return l.byCol[c] }

// primeLedger records, per row, the column of the zero primed while
// searching for an augmenting path. Cleared at the end of each
// path-building phase; at most one prime per row is ever needed because
// a row is covered right after its zero is primed.
type primeLedger struct {
	byRow []int // byRow[r] = primed column in row r, or none
}

// newPrimeLedger returns an empty ledger for rows rows.
func newPrimeLedger(rows int) *primeLedger {
	l := &primeLedger{byRow: make([]int, rows)}
	l.Clear()

	return l
}

// Prime marks (r, c) as the primed zero of row r.
func (l *primeLedger) Prime(r, c int) { l.byRow[r] = c }

// RowPrime returns the primed column in row r, or none.
func (l *primeLedger) RowPrime(r int) int { return l.byRow[r] }

// Clear erases every prime. Complexity: O(rows).
func (l *primeLedger) Clear() {
	var i int
	for i = range l.byRow {
		l.byRow[i] = none
	}
}

// zeroQueue is a FIFO multiset of cells known to have held a zero cost
// when enqueued. Entries may go stale — overwritten by a later cost
// update or swallowed by coverage — so consumers must validate each
// popped cell against the live matrix state before use.
type zeroQueue struct {
	cells []cell
	head  int
}

// Push enqueues a cell known to be zero right now.
func (q *zeroQueue) Push(r, c int) {
	q.cells = append(q.cells, cell{r: r, c: c})
}

// Pop dequeues the oldest cached cell, reporting false when empty.
func (q *zeroQueue) Pop() (cell, bool) {
	if q.head >= len(q.cells) {
		return cell{}, false
	}
	z := q.cells[q.head]
	q.head++
	// Reclaim the backing array once fully drained.
	if q.head == len(q.cells) {
		q.cells = q.cells[:0]
		q.head = 0
	}

	return z, true
}

// PurgeRow drops every pending entry in row r. Invoked when a row is
// newly covered, so its cached zeros cannot be offered again.
// Complexity: O(pending).
func (q *zeroQueue) PurgeRow(r int) {
	kept := q.cells[:q.head]
	var z cell
	for _, z = range q.cells[q.head:] {
		if z.r != r {
			kept = append(kept, z)
		}
	}
	q.cells = kept
}

// Reset drops every pending entry. Complexity: O(1).
func (q *zeroQueue) Reset() {
	q.cells = q.cells[:0]
	q.head = 0
}
