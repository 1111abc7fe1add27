// Package genrel generates deterministic random relations for
// benchmarking the join engine and for property-based tests that need
// many small tables rather than one hand-written fixture. Determinism
// comes from a caller-supplied seed, never from the package's own
// global state.
package genrel
