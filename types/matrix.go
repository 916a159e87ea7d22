package types

import "context"

// Op identifies an element-wise combination operator.
type Op int

const (
	// OpAdd combines two matrices by element-wise addition.
	OpAdd Op = iota

	// OpSubtract combines two matrices by element-wise subtraction
	// (left minus right).
	OpSubtract
)

// String returns the operator name for logging and error messages.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// Matrix is an opaque handle to matrix data.
//
// A handle abstracts over whether the data lives in local memory or is
// partitioned across distributed storage. Handles are immutable once
// produced: no component ever mutates a handle it did not just create, so
// concurrent reads from multiple recursive branches are always safe.
//
// Element type is float64 for every backend. Integer matrices are
// represented exactly up to 2^53.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Materialize collects the full matrix into local dense form,
	// row-major. The returned slices are owned by the caller; mutating
	// them never affects the handle.
	Materialize(ctx context.Context) ([][]float64, error)
}

// Quadrants maps the four quadrant labels {11, 12, 21, 22} to handles.
//
// Produced by one partition step and consumed within the same recursion
// level; never persisted beyond it.
type Quadrants struct {
	Q11 Matrix // top-left
	Q12 Matrix // top-right
	Q21 Matrix // bottom-left
	Q22 Matrix // bottom-right
}

// Backend constructs matrix handles and implements the primitive handle
// operations the recursion engine is built on.
//
// A backend decides where data lives and how eagerly intermediate results
// materialize; the engine's contract is only the recursive formula and the
// shape invariants. Two implementations ship with the library: an
// in-process dense backend and a NATS JetStream KV backend.
//
// Shape preconditions are validated by the calling components before any
// backend method runs, so implementations may assume conforming inputs.
// All methods must be safe for concurrent use on distinct handles.
type Backend interface {
	// Distribute constructs a new handle from local dense data.
	// Every row of data must have identical length.
	Distribute(ctx context.Context, data [][]float64) (Matrix, error)

	// Partition splits a square, even-sided matrix into four
	// (n/2)×(n/2) quadrant handles. The input handle remains valid and
	// unmodified.
	Partition(ctx context.Context, m Matrix) (*Quadrants, error)

	// Combine produces a new handle by applying op element-wise over
	// two same-shape matrices, pairing rows strictly by position.
	Combine(ctx context.Context, a, b Matrix, op Op) (Matrix, error)

	// ConcatCols produces a new handle whose rows are each left row
	// followed by the aligned right row. Row counts must match.
	ConcatCols(ctx context.Context, left, right Matrix) (Matrix, error)

	// StackRows produces a new handle holding all rows of top followed
	// by all rows of bottom. Column counts must match.
	StackRows(ctx context.Context, top, bottom Matrix) (Matrix, error)
}
