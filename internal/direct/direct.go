// Package direct implements the classical matrix product used as the
// recursion base case.
package direct

import (
	"context"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Multiply computes the classical product of a (m×k) and b (k×p) and
// returns it as a fresh handle.
//
// Both operands are fully materialized to local dense form first: once a
// block is small enough, the constant-factor advantage of the triple loop
// outweighs any further decomposition, and full materialization is cheap.
// The inner loops run in i-k-j order so the innermost pass walks both the
// output row and the b row sequentially.
//
// Parameters:
//   - ctx: Context for cancellation of materialization and redistribution
//   - backend: Backend used to materialize operands and distribute the result
//   - a, b: Operand handles with matching inner dimension
//
// Returns:
//   - types.Matrix: Handle for the m×p product
//   - error: ShapeError if a's column count differs from b's row count
func Multiply(ctx context.Context, backend types.Backend, a, b types.Matrix) (types.Matrix, error) {
	if a.Cols() != b.Rows() {
		return nil, types.NewShapeError("direct_multiply",
			"inner dimension mismatch: %dx%d times %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	left, err := a.Materialize(ctx)
	if err != nil {
		return nil, err
	}

	right, err := b.Materialize(ctx)
	if err != nil {
		return nil, err
	}

	m, k, p := a.Rows(), a.Cols(), b.Cols()
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, p)
	}

	for i := 0; i < m; i++ {
		for t := 0; t < k; t++ {
			av := left[i][t]
			if av == 0 {
				continue
			}
			row := right[t]
			for j := 0; j < p; j++ {
				out[i][j] += av * row[j]
			}
		}
	}

	return backend.Distribute(ctx, out)
}
