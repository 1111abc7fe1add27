package join

import "errors"

// Construction-time error kinds, per the engine's error taxonomy.
// None of these are ever produced by the hot join loop: every bound
// they guard against is enforced once, at construction, so Query.Run
// has nothing left to check.
var (
	// ErrArityMismatch is returned by NewTable when a row's length
	// differs from the table's declared arity.
	ErrArityMismatch = errors.New("join: row arity does not match table arity")

	// ErrMappingOutOfArity is returned by NewClause when the mapping
	// length does not equal the table's arity.
	ErrMappingOutOfArity = errors.New("join: mapping length does not match table arity")

	// ErrMappingOutOfVariables is returned by NewQuery when a clause's
	// mapping entry is not a valid variable index.
	ErrMappingOutOfVariables = errors.New("join: mapping entry is out of range for the query's variables")

	// ErrInternalInvariantViolated marks a bug: a hint out of bounds,
	// a table without its sentinel, or similar. Construction and the
	// hot loop never intentionally raise it.
	ErrInternalInvariantViolated = errors.New("join: internal invariant violated")
)
