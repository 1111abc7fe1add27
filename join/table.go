package join

import (
	"fmt"
	"sort"
)

// Table is a sorted, equal-arity sequence of Rows, terminated by
// exactly one sentinel row of Greatest values. Tables are immutable
// after construction, so they may be shared across concurrently
// running Queries; each Query owns its own per-clause scratch state
// (see clauseState), never the Table.
type Table struct {
	arity int
	rows  []Row // ascending, sentinel row always last
}

// NewTable builds a Table from arity and rows: every row must have
// length arity, rows are sorted ascending (duplicates are permitted
// and preserved), and one sentinel row of arity Greatest values is
// appended. An empty rows slice is accepted; the table then holds
// only the sentinel.
func NewTable(arity int, rows []Row) (*Table, error) {
	sorted := make([]Row, len(rows))
	for i, r := range rows {
		if len(r) != arity {
			return nil, fmt.Errorf("%w: row %d has arity %d, want %d", ErrArityMismatch, i, len(r), arity)
		}
		sorted[i] = r.clone()
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	sorted = append(sorted, allGreatest(arity))
	return &Table{arity: arity, rows: sorted}, nil
}

// Arity returns the table's column count.
func (t *Table) Arity() int {
	return t.arity
}

// Len returns the number of data rows, excluding the sentinel.
func (t *Table) Len() int {
	return len(t.rows) - 1
}

// Row returns the i-th row, 0 <= i <= Len(), where Row(Len()) is the
// sentinel.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Next returns the first row r such that r >= probe (inclusive=true)
// or r > probe (inclusive=false). The sentinel guarantees a match
// always exists. hint is a mutable cursor: callers pass the row index
// returned by their previous call (or 0 initially) to amortize
// repeated, monotonically increasing probes to near-constant time;
// the result does not depend on the hint's value, only its presence
// speeds up the common case. The fast path fires only when
// rows[*hint] compares exactly equal to probe, and only returns
// rows[*hint+1] for an exclusive seek once that row is confirmed to
// compare strictly greater than probe; a duplicate run (rows[*hint+1]
// also equal to probe) falls back to binary search, which finds the
// end of the run correctly. Any other starting hint also falls back
// to binary search.
func (t *Table) Next(probe Row, inclusive bool, hint *int) Row {
	n := len(t.rows)
	h := *hint
	if h < 0 || h >= n {
		h = 0
	}
	if t.rows[h].Compare(probe) == 0 {
		if inclusive {
			*hint = h
			return t.rows[h]
		}
		if h+1 < n && t.rows[h+1].Compare(probe) > 0 {
			*hint = h + 1
			return t.rows[h+1]
		}
	}

	i := sort.Search(n, func(i int) bool {
		c := t.rows[i].Compare(probe)
		if inclusive {
			return c >= 0
		}
		return c > 0
	})
	// i == n only when probe itself is the all-Greatest sentinel and
	// inclusive is false: nothing compares strictly greater than the
	// maximum row. The sentinel is its own fixed point under exclusive
	// seek in that case, so clamp rather than index out of bounds.
	if i == n {
		i = n - 1
	}
	*hint = i
	return t.rows[i]
}
