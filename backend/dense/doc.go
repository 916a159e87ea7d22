// Package dense provides the in-process matrix backend.
//
// Data lives in a single flat row-major float64 slice per handle. Every
// primitive is a local copy, so the backend is fully deterministic and is
// the reference implementation the recursion engine is tested against.
// Handles are immutable: all operations allocate fresh storage and never
// touch their inputs.
package dense
