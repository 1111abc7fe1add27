package join

import "strings"

// kind discriminates the three cases of Value: the synthetic
// sentinels and the user-constructed atoms in between them. The
// numeric ordering of the constants doubles as the ordering between
// kinds, so Compare can fall back to it directly.
type kind uint8

const (
	kindLeast kind = iota
	kindAtom
	kindGreatest
)

// Value is a totally ordered atom with two synthetic bookends:
// Least, which compares below every Atom, and Greatest, which
// compares above every Atom. No user input ever constructs a Least or
// Greatest value; they exist so that seeking the "next row at or
// after a probe" is a total operation with no out-of-bounds case.
//
// Value is a small, comparable struct (not an interface), so Least
// and Greatest are cheap, allocation-free constants and Value itself
// is safe to copy by assignment.
type Value struct {
	k    kind
	atom string
}

// Least is the sentinel below every Atom.
var Least = Value{k: kindLeast}

// Greatest is the sentinel above every Atom.
var Greatest = Value{k: kindGreatest}

// NewAtom wraps a payload as an atom. Atom ordering is the payload's
// natural (byte-lexicographic) order.
func NewAtom(payload string) Value {
	return Value{k: kindAtom, atom: payload}
}

// IsAtom reports whether v is a user-constructed atom, as opposed to
// one of the synthetic sentinels.
func (v Value) IsAtom() bool {
	return v.k == kindAtom
}

// IsLeast reports whether v is the Least sentinel.
func (v Value) IsLeast() bool {
	return v.k == kindLeast
}

// IsGreatest reports whether v is the Greatest sentinel.
func (v Value) IsGreatest() bool {
	return v.k == kindGreatest
}

// Atom returns the payload of an atom value and true, or the zero
// value and false if v is a sentinel.
func (v Value) Atom() (string, bool) {
	if v.k != kindAtom {
		return "", false
	}
	return v.atom, true
}

// Compare returns a negative number if v < other, zero if v == other,
// and a positive number if v > other, under Least < Atom < Greatest
// and byte-lexicographic order between atoms.
func (v Value) Compare(other Value) int {
	if v.k != other.k {
		return int(v.k) - int(other.k)
	}
	if v.k == kindAtom {
		return strings.Compare(v.atom, other.atom)
	}
	return 0
}

// Equal reports structural equality: same kind, and for atoms, the
// same payload.
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.k {
	case kindLeast:
		return "-inf"
	case kindGreatest:
		return "+inf"
	default:
		return v.atom
	}
}
