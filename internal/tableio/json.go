package tableio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/ljoin/join"
)

// LoadJSON reads newline-delimited JSON arrays of strings, each array
// one row, and builds a join.Table of the given arity. Arity
// mismatches are aggregated the same way LoadCSV aggregates them.
func LoadJSON(r io.Reader, arity int) (*join.Table, error) {
	dec := json.NewDecoder(r)

	var (
		rows []join.Row
		errs *multierror.Error
		line int
	)
	for dec.More() {
		var record []string
		if err := dec.Decode(&record); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("tableio: json record %d: %w", line+1, err))
			break
		}
		line++
		if len(record) != arity {
			errs = multierror.Append(errs, fmt.Errorf("%w: json record %d has %d fields, want %d", join.ErrArityMismatch, line, len(record), arity))
			continue
		}
		row := make(join.Row, arity)
		for i, field := range record {
			row[i] = join.NewAtom(field)
		}
		rows = append(rows, row)
	}
	if errs != nil {
		return nil, errs.ErrorOrNil()
	}
	return join.NewTable(arity, rows)
}
