package dense

import (
	"context"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Backend implements types.Backend with local flat row-major storage.
//
// The zero value is ready to use; Backend carries no state of its own and
// is safe for concurrent use.
type Backend struct{}

// Compile-time assertion that Backend implements types.Backend.
var _ types.Backend = (*Backend)(nil)

// New creates the in-process dense backend.
//
// Returns:
//   - *Backend: Ready-to-use backend
func New() *Backend {
	return &Backend{}
}

// handle is an immutable dense matrix in row-major order.
type handle struct {
	data []float64
	rows int
	cols int
}

var _ types.Matrix = (*handle)(nil)

func (h *handle) Rows() int { return h.rows }

func (h *handle) Cols() int { return h.cols }

func (h *handle) at(i, j int) float64 { return h.data[i*h.cols+j] }

// Materialize copies the handle into caller-owned nested slices.
func (h *handle) Materialize(_ context.Context) ([][]float64, error) {
	out := make([][]float64, h.rows)
	for i := 0; i < h.rows; i++ {
		row := make([]float64, h.cols)
		copy(row, h.data[i*h.cols:(i+1)*h.cols])
		out[i] = row
	}

	return out, nil
}

// Distribute constructs a handle from local dense data.
//
// Rows must all share one length; data is copied, so callers may reuse
// their slices afterwards.
func (b *Backend) Distribute(_ context.Context, data [][]float64) (types.Matrix, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}

	h := &handle{data: make([]float64, 0, rows*cols), rows: rows, cols: cols}
	for i, row := range data {
		if len(row) != cols {
			return nil, types.NewShapeError("distribute",
				"row %d has %d columns, expected %d", i, len(row), cols)
		}
		h.data = append(h.data, row...)
	}

	return h, nil
}

// Partition splits m into four quadrant handles by copying the four
// index ranges. The caller has already validated squareness and parity.
func (b *Backend) Partition(ctx context.Context, m types.Matrix) (*types.Quadrants, error) {
	src, err := b.local(ctx, m)
	if err != nil {
		return nil, err
	}

	half := src.rows / 2

	return &types.Quadrants{
		Q11: src.slice(0, half, 0, half),
		Q12: src.slice(0, half, half, src.cols),
		Q21: src.slice(half, src.rows, 0, half),
		Q22: src.slice(half, src.rows, half, src.cols),
	}, nil
}

// Combine applies op element-wise over two same-shape handles.
func (b *Backend) Combine(ctx context.Context, a, c types.Matrix, op types.Op) (types.Matrix, error) {
	left, err := b.local(ctx, a)
	if err != nil {
		return nil, err
	}
	right, err := b.local(ctx, c)
	if err != nil {
		return nil, err
	}

	out := &handle{data: make([]float64, len(left.data)), rows: left.rows, cols: left.cols}
	switch op {
	case types.OpAdd:
		for i, v := range left.data {
			out.data[i] = v + right.data[i]
		}
	case types.OpSubtract:
		for i, v := range left.data {
			out.data[i] = v - right.data[i]
		}
	default:
		return nil, types.NewShapeError("combine", "unsupported operator %d", op)
	}

	return out, nil
}

// ConcatCols glues aligned rows of left and right side by side.
func (b *Backend) ConcatCols(ctx context.Context, l, r types.Matrix) (types.Matrix, error) {
	left, err := b.local(ctx, l)
	if err != nil {
		return nil, err
	}
	right, err := b.local(ctx, r)
	if err != nil {
		return nil, err
	}
	if left.rows != right.rows {
		return nil, types.NewShapeError("concat_cols",
			"row count mismatch: %d vs %d", left.rows, right.rows)
	}

	out := &handle{
		data: make([]float64, 0, left.rows*(left.cols+right.cols)),
		rows: left.rows,
		cols: left.cols + right.cols,
	}
	for i := 0; i < left.rows; i++ {
		out.data = append(out.data, left.data[i*left.cols:(i+1)*left.cols]...)
		out.data = append(out.data, right.data[i*right.cols:(i+1)*right.cols]...)
	}

	return out, nil
}

// StackRows places all rows of top above all rows of bottom.
func (b *Backend) StackRows(ctx context.Context, t, bt types.Matrix) (types.Matrix, error) {
	top, err := b.local(ctx, t)
	if err != nil {
		return nil, err
	}
	bottom, err := b.local(ctx, bt)
	if err != nil {
		return nil, err
	}
	if top.cols != bottom.cols {
		return nil, types.NewShapeError("stack_rows",
			"column count mismatch: %d vs %d", top.cols, bottom.cols)
	}

	out := &handle{
		data: make([]float64, 0, len(top.data)+len(bottom.data)),
		rows: top.rows + bottom.rows,
		cols: top.cols,
	}
	out.data = append(out.data, top.data...)
	out.data = append(out.data, bottom.data...)

	return out, nil
}

// local returns m as a dense handle, materializing foreign handles so the
// backend interoperates with handles produced elsewhere.
func (b *Backend) local(ctx context.Context, m types.Matrix) (*handle, error) {
	if h, ok := m.(*handle); ok {
		return h, nil
	}

	data, err := m.Materialize(ctx)
	if err != nil {
		return nil, err
	}

	dist, err := b.Distribute(ctx, data)
	if err != nil {
		return nil, err
	}

	return dist.(*handle), nil
}

// slice copies the half-open row/column range into a fresh handle.
func (h *handle) slice(r0, r1, c0, c1 int) *handle {
	out := &handle{
		data: make([]float64, 0, (r1-r0)*(c1-c0)),
		rows: r1 - r0,
		cols: c1 - c0,
	}
	for i := r0; i < r1; i++ {
		out.data = append(out.data, h.data[i*h.cols+c0:i*h.cols+c1]...)
	}

	return out
}
