package join

import "fmt"

// Clause pairs a Table with a mapping that binds the table's local
// columns to a subset of a Query's global variables. mapping[i] is
// the global variable index the table's i-th column is bound to;
// mapping entries need not be distinct, though the usual case is.
type Clause struct {
	table   *Table
	mapping []int
}

// NewClause binds mapping to table. len(mapping) must equal
// table.Arity(); whether each entry is in range for a query's
// variables is checked later, at NewQuery time, since a Clause by
// itself does not know the query's variable count.
func NewClause(mapping []int, table *Table) (*Clause, error) {
	if len(mapping) != table.Arity() {
		return nil, fmt.Errorf("%w: mapping has %d entries, table arity is %d", ErrMappingOutOfArity, len(mapping), table.Arity())
	}
	m := make([]int, len(mapping))
	copy(m, mapping)
	return &Clause{table: table, mapping: m}, nil
}

// clauseState is a clause's mutable scratch: its cursor hint and the
// two buffers reused across every call to next. The proposal next
// returns is a reference into external; callers must consume it
// (compare it, copy values out of it) before calling next again on
// the same clause.
type clauseState struct {
	hint     int
	internal Row
	external Row
}

func newClauseState(arity, numVariables int) *clauseState {
	return &clauseState{
		hint:     0,
		internal: make(Row, arity),
		external: make(Row, numVariables),
	}
}

// next computes this clause's proposal: the smallest variable vector
// >= variables (inclusive=true) or > variables (inclusive=false) that
// is consistent with the clause's table, given the caller's current
// variables. The returned Row aliases state.external and is
// overwritten by the next call on the same state.
//
// The algorithm is project / seek / inflate (see
// TestQueryPathsLengthTwoOrientationA/B in query_test.go for why the
// inflate step's suffix reset matters):
//
//  1. Project: copy variables[mapping[c]] into internal[c] for each
//     local column c, restricting to the columns this clause sees.
//  2. Seek: ask the table for the first row at or past internal.
//  3. Inflate: lift that row back into a full-width proposal. Any
//     global coordinate strictly after the first column where the
//     seek moved past the probe is unconstrained again and resets to
//     Least; coordinates not touched by this clause carry over from
//     variables unless they fall in that reset suffix.
func (c *Clause) next(state *clauseState, variables Row, inclusive bool) Row {
	for i, g := range c.mapping {
		state.internal[i] = variables[g]
	}

	nextRow := c.table.Next(state.internal, inclusive, &state.hint)

	copy(state.external, variables)
	resetFrom := -1
	for i, g := range c.mapping {
		state.external[g] = nextRow[i]
		if resetFrom < 0 && !nextRow[i].Equal(state.internal[i]) {
			resetFrom = g
		}
	}
	if resetFrom >= 0 {
		for g := resetFrom + 1; g < len(state.external); g++ {
			state.external[g] = Least
		}
	}
	return state.external
}
