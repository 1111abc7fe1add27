package join

import (
	"context"
	"fmt"
)

// Options configures a Query beyond the engine's core semantics.
// Every field is an external, host-level concern: it never changes
// which rows satisfy the join, only when Run decides to stop asking
// for more of them.
type Options struct {
	// MaxResults caps the number of rows Run emits before it stops,
	// even if more satisfying assignments remain. Zero (the default)
	// means unbounded.
	MaxResults int
}

// Option mutates Options during NewQuery.
type Option func(*Options)

// WithMaxResults caps the number of results a Query will emit.
func WithMaxResults(n int) Option {
	return func(o *Options) { o.MaxResults = n }
}

// Query is a conjunction of Clauses over a fixed number of variables.
type Query struct {
	numVariables int
	clauses      []*Clause
	opts         Options
}

// NewQuery builds a Query. It fails with ErrMappingOutOfVariables if
// any clause's mapping references a variable index >= numVariables.
func NewQuery(numVariables int, clauses []*Clause, opts ...Option) (*Query, error) {
	for ci, c := range clauses {
		for _, g := range c.mapping {
			if g < 0 || g >= numVariables {
				return nil, fmt.Errorf("%w: clause %d maps to variable %d, query has %d variables", ErrMappingOutOfVariables, ci, g, numVariables)
			}
		}
	}
	cs := make([]*Clause, len(clauses))
	copy(cs, clauses)

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return &Query{numVariables: numVariables, clauses: cs, opts: o}, nil
}

// Run executes the fixed-point join loop and returns every variable
// assignment that satisfies every clause, in ascending lexicographic
// order with no duplicates.
//
// Each iteration either emits a result and strictly advances past it,
// or strictly advances without emitting; since the variable lattice
// is finite up to the Greatest sentinel, Run always terminates. ctx is
// checked between iterations only — a single iteration is pure CPU
// and memory and never suspends — so cancellation returns whatever
// results were accumulated so far alongside the context's error.
func (q *Query) Run(ctx context.Context) ([]Row, error) {
	variables := allLeast(q.numVariables)
	states := make([]*clauseState, len(q.clauses))
	for i, c := range q.clauses {
		states[i] = newClauseState(c.table.Arity(), q.numVariables)
	}

	var results []Row
	for {
		if variables[0].IsGreatest() {
			return results, nil
		}
		if q.opts.MaxResults > 0 && len(results) >= q.opts.MaxResults {
			return results, nil
		}
		select {
		case <-ctx.Done():
			return results, context.Cause(ctx)
		default:
		}

		maxProp := q.proposeAndPick(states, variables, true, allLeast(q.numVariables), rowGreater)
		if maxProp.Equal(variables) {
			results = append(results, variables.clone())
			variables = q.proposeAndPick(states, variables, false, allGreatest(q.numVariables), rowLess)
		} else {
			variables = maxProp
		}
	}
}

// rowGreater and rowLess report whether candidate should replace
// current as the running lexicographic maximum/minimum in
// proposeAndPick.
func rowGreater(candidate, current Row) bool { return candidate.Compare(current) > 0 }
func rowLess(candidate, current Row) bool    { return candidate.Compare(current) < 0 }

// proposeAndPick asks every clause for its proposal given variables
// and inclusive, then keeps whichever full proposal vector wins under
// better (the lexicographically greatest for the inclusive pass, the
// least for the exclusive one — seed is that pass's identity vector,
// used verbatim when there are no clauses). This is a selection among
// whole vectors, not a per-coordinate blend: mixing column g from one
// clause's proposal with column g' from another's can produce a
// vector smaller than every clause actually proposed, which would
// break the driver's strict-advance guarantee. Every clause's
// proposal aliases that clause's own reusable buffer, so the winner
// is cloned out before the next clause is asked.
func (q *Query) proposeAndPick(states []*clauseState, variables Row, inclusive bool, seed Row, better func(candidate, current Row) bool) Row {
	best := seed
	for i, c := range q.clauses {
		prop := c.next(states[i], variables, inclusive)
		if better(prop, best) {
			best = prop.clone()
		}
	}
	return best
}
