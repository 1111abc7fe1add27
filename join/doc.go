// Package join implements a worst-case-optimal relational join engine
// built around the leapfrog triejoin family of algorithms.
//
// Given a set of sorted, indexed Tables and a conjunctive Query over
// named variables, Query.Run produces every assignment to the query's
// variables that satisfies all clauses simultaneously, in ascending
// lexicographic order, with no duplicates.
//
// The package is deliberately narrow: it has no parser, no CLI, and no
// notion of disjunction, negation, aggregation, or query optimization.
// Clause order is taken as given. Callers construct Tables from rows
// in any order (NewTable sorts them), bind them into Clauses via a
// column mapping, and hand the result to NewQuery.
//
// Example:
//
//	t, _ := join.NewTable(2, []join.Row{
//		{join.NewAtom("alice"), join.NewAtom("bob")},
//	})
//	c, _ := join.NewClause([]int{0, 1}, t)
//	q, _ := join.NewQuery(2, []*join.Clause{c})
//	rows, _ := q.Run(context.Background())
package join
