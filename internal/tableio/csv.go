package tableio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/ljoin/join"
)

// LoadCSV reads comma-separated rows from r and builds a join.Table of
// the given arity. A record whose field count does not match arity is
// recorded against a *multierror.Error rather than aborting the read,
// so a caller sees every malformed line in a data file in one pass; a
// CSV syntax error is recorded and stops the read. If any error was
// recorded, LoadCSV returns it and builds no table. Otherwise it hands
// the rows to join.NewTable, which re-validates arity and cannot itself
// fail on this path.
func LoadCSV(r io.Reader, arity int) (*join.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated by hand below, not by encoding/csv

	var (
		rows []join.Row
		errs *multierror.Error
		line int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("tableio: csv line %d: %w", line+1, err))
			break
		}
		line++
		if len(record) != arity {
			errs = multierror.Append(errs, fmt.Errorf("%w: csv line %d has %d fields, want %d", join.ErrArityMismatch, line, len(record), arity))
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
