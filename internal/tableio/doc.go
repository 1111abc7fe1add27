// Package tableio loads join.Tables from external row sources: CSV and
// newline-delimited JSON. It is the input-parser collaborator the core
// join package deliberately does not own — the core only ever sees
// already-built Tables.
//
// Loading is batch-oriented: every row is parsed and checked before a
// single join.Table is constructed, and every arity mismatch found
// along the way is collected rather than stopping at the first one, so
// a caller fixing up a bad data file sees every offending row in one
// pass.
package tableio
