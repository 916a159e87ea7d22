// Package block implements quadrant partitioning of square matrices and
// its inverse, the quadrant join.
package block

import (
	"context"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Partition splits m into four equal (n/2)×(n/2) quadrant handles.
//
// The input must be square with an even side length; the original handle
// remains valid and unmodified. Quadrants are fresh handles, not
// destructive slices.
//
// Parameters:
//   - ctx: Context for cancellation of backend data movement
//   - backend: Backend that owns the handle's storage
//   - m: Square, even-sided matrix handle
//
// Returns:
//   - *types.Quadrants: The four quadrant handles
//   - error: ShapeError if m is not square or its side is odd
func Partition(ctx context.Context, backend types.Backend, m types.Matrix) (*types.Quadrants, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, types.NewShapeError("partition", "matrix %dx%d is not square", rows, cols)
	}
	if rows%2 != 0 {
		return nil, types.NewShapeError("partition", "matrix side %d is odd, cannot halve", rows)
	}

	return backend.Partition(ctx, m)
}

// Join reassembles four equal-shaped quadrants into one matrix.
//
// C11 and C12 are concatenated column-wise into a top band, C21 and C22
// into a bottom band, then the bands are stacked row-wise. Row order
// within each band is preserved.
//
// Parameters:
//   - ctx: Context for cancellation of backend data movement
//   - backend: Backend that owns the handles' storage
//   - c11, c12, c21, c22: Quadrants sharing one shape
//
// Returns:
//   - types.Matrix: Handle of side 2×quadrant side
//   - error: ShapeError if the quadrants do not share identical shape
func Join(ctx context.Context, backend types.Backend, c11, c12, c21, c22 types.Matrix) (types.Matrix, error) {
	rows, cols := c11.Rows(), c11.Cols()
	for _, q := range []types.Matrix{c12, c21, c22} {
		if q.Rows() != rows || q.Cols() != cols {
			return nil, types.NewShapeError("join",
				"quadrant shapes differ: %dx%d vs %dx%d", rows, cols, q.Rows(), q.Cols())
		}
	}

	top, err := backend.ConcatCols(ctx, c11, c12)
	if err != nil {
		return nil, err
	}

	bottom, err := backend.ConcatCols(ctx, c21, c22)
	if err != nil {
		return nil, err
	}

	return backend.StackRows(ctx, top, bottom)
}
