package join_test

import (
	"context"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/gitrdm/ljoin/internal/genrel"
	"github.com/gitrdm/ljoin/join"
)

// TestQueryCompletenessProperty checks invariant 6 against randomly
// generated tables: every variable assignment drawn from the atoms
// actually present, whose per-clause projection is in every clause's
// table, must appear in Run's output — and Run must not emit it more
// than once. This lives in an external join_test package (rather than
// join/*_test.go) because internal/genrel itself imports join, so
// package join cannot import genrel back without a cycle.
func TestQueryCompletenessProperty(t *testing.T) {
	const (
		domain = 3
		rows   = 6
	)

	check := func(seed int64) bool {
		s := seed % 1000
		if s < 0 {
			s = -s
		}

		a, err := genrel.Generate(genrel.Options{Rows: rows, Arity: 2, Domain: domain, Seed: s})
		if err != nil {
			t.Fatalf("generate a: %v", err)
		}
		b, err := genrel.Generate(genrel.Options{Rows: rows, Arity: 2, Domain: domain, Seed: s + 1})
		if err != nil {
			t.Fatalf("generate b: %v", err)
		}

		ca, err := join.NewClause([]int{0, 1}, a)
		if err != nil {
			t.Fatalf("clause a: %v", err)
		}
		cb, err := join.NewClause([]int{1, 2}, b)
		if err != nil {
			t.Fatalf("clause b: %v", err)
		}
		q, err := join.NewQuery(3, []*join.Clause{ca, cb})
		if err != nil {
			t.Fatalf("new query: %v", err)
		}
		got, err := q.Run(context.Background())
		if err != nil {
			t.Fatalf("run: %v", err)
		}

		gotSet := make(map[string]bool, len(got))
		for _, row := range got {
			k := rowKey(row)
			if gotSet[k] {
				t.Fatalf("seed %d: Run emitted %s more than once", s, k)
			}
			gotSet[k] = true
		}

		want := bruteForceJoin(a, b, domain)
		for k := range want {
			if !gotSet[k] {
				t.Fatalf("seed %d: %s satisfies both clauses but is missing from Run's output", s, k)
			}
		}
		for k := range gotSet {
			if !want[k] {
				t.Fatalf("seed %d: Run emitted %s, which satisfies no clause combination", s, k)
			}
		}
		return true
	}

	if err := quick.Check(check, &quick.Config{MaxCount: 25}); err != nil {
		t.Error(err)
	}
}

// bruteForceJoin computes the same three-variable join as
// TestQueryCompletenessProperty's query by exhaustive search over the
// domain, independent of the leapfrog triejoin machinery under test.
func bruteForceJoin(a, b *join.Table, domain int) map[string]bool {
	want := make(map[string]bool)
	for x := 0; x < domain; x++ {
		for y := 0; y < domain; y++ {
			for z := 0; z < domain; z++ {
				v0, v1, v2 := atomN(x), atomN(y), atomN(z)
				if tableHas(a, v0, v1) && tableHas(b, v1, v2) {
					want[rowKey(join.Row{v0, v1, v2})] = true
				}
			}
		}
	}
	return want
}

func atomN(n int) join.Value {
	return join.NewAtom(fmt.Sprintf("v%d", n))
}

func tableHas(table *join.Table, values ...join.Value) bool {
	row := join.Row(values)
	for i := 0; i < table.Len(); i++ {
		if table.Row(i).Equal(row) {
			return true
		}
	}
	return false
}

func rowKey(row join.Row) string {
	return fmt.Sprint([]join.Value(row))
}
