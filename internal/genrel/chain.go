package genrel

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/ljoin/join"
)

// Graph generates a random directed-edge relation over n labelled
// nodes ("n0".."n<n-1>"), with outDegree random out-edges per node —
// the same shape as scenario S3/S4's edges table, scaled up for
// benchmarking path-join queries. The returned table has arity 2.
func Graph(n, outDegree int, seed int64) (*join.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	var rows []join.Row
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("n%d", i)
		for d := 0; d < outDegree; d++ {
			to := fmt.Sprintf("n%d", rng.Intn(n))
			rows = append(rows, join.Row{join.NewAtom(from), join.NewAtom(to)})
		}
	}
	return join.NewTable(2, rows)
}

// Reverse builds the column-swapped relation of table, the
// "edges_rev" counterpart scenarios S3/S4 join against.
func Reverse(table *join.Table) (*join.Table, error) {
	rows := make([]join.Row, table.Len())
	for i := 0; i < table.Len(); i++ {
		r := table.Row(i)
		rows[i] = join.Row{r[1], r[0]}
	}
	return join.NewTable(2, rows)
}
