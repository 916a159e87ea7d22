package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the Strassen library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components use these sentinels for known error
// conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).
var (
	// ErrShape is the base error for every shape-precondition violation:
	// non-square input to partitioning, odd side length, mismatched
	// dimensions to combination or concatenation, mismatched inner
	// dimension to direct multiplication, or operands that disagree with
	// the declared size at the top-level call. Shape errors are
	// deterministic functions of the input and are never retried or
	// coerced; they propagate unchanged through every recursion level.
	ErrShape = errors.New("shape violation")

	// ErrStorage indicates a failure in a backend's underlying storage
	// substrate (missing chunk, connectivity loss, corrupt payload).
	// Distinct from ErrShape: storage faults are a backend concern, not
	// an algorithm precondition.
	ErrStorage = errors.New("backend storage failure")

	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBackendRequired is returned when a nil backend is passed to the engine.
	ErrBackendRequired = errors.New("matrix backend is required")
)

// ShapeError describes a shape-precondition violation.
//
// It records the operation that rejected its input and a human-readable
// detail. ShapeError unwraps to ErrShape, so callers check with
// errors.Is(err, types.ErrShape) and inspect the fields with errors.As.
type ShapeError struct {
	// Op is the rejecting operation ("partition", "join", "combine",
	// "concat_cols", "stack_rows", "direct_multiply", "multiply").
	Op string

	// Detail describes the violated precondition.
	Detail string
}

// NewShapeError creates a ShapeError for the given operation.
//
// Parameters:
//   - op: Name of the rejecting operation
//   - format: Printf-style detail format
//   - args: Format arguments
//
// Returns:
//   - *ShapeError: Error that satisfies errors.Is(err, ErrShape)
func NewShapeError(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, ErrShape)
}

// Unwrap makes ShapeError match ErrShape under errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}
