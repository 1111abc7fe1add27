package genrel

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/ljoin/join"
)

// Options configures a random relation.
type Options struct {
	// Rows is the number of data rows to generate (duplicates are
	// possible and, per spec.md §4.B, permitted).
	Rows int
	// Arity is the column count.
	Arity int
	// Domain bounds how many distinct atoms appear per column; each
	// column's value is drawn from {"v0", ..., "v<Domain-1>"}.
	Domain int
	// Seed drives the random source; the same seed always produces
	// the same table.
	Seed int64
}

// Generate builds a random join.Table from opts. The rows are not
// pre-sorted by the caller; join.NewTable does that.
func Generate(opts Options) (*join.Table, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	rows := make([]join.Row, opts.Rows)
	for i := range rows {
		row := make(join.Row, opts.Arity)
		for c := 0; c < opts.Arity; c++ {
			row[c] = join.NewAtom(fmt.Sprintf("v%d", rng.Intn(opts.Domain)))
		}
		rows[i] = row
	}
	return join.NewTable(opts.Arity, rows)
}
