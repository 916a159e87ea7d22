// Package combine implements element-wise combination of same-shape
// matrix handles.
package combine

import (
	"context"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Apply produces a fresh handle by combining a and b element-wise.
//
// Rows are paired strictly by position; both handles must have been
// derived from matrices of equal original dimension so row ordinality
// lines up. Neither input is mutated.
//
// Parameters:
//   - ctx: Context for cancellation of backend data movement
//   - backend: Backend that owns the handles' storage
//   - a, b: Same-shape matrix handles
//   - op: types.OpAdd or types.OpSubtract (a minus b)
//
// Returns:
//   - types.Matrix: Fresh combined handle
//   - error: ShapeError if a and b differ in row or column count
func Apply(ctx context.Context, backend types.Backend, a, b types.Matrix, op types.Op) (types.Matrix, error) {
	if a.Rows() != b.Rows() {
		return nil, types.NewShapeError("combine",
			"row count mismatch: %d vs %d", a.Rows(), b.Rows())
	}
	if a.Cols() != b.Cols() {
		return nil, types.NewShapeError("combine",
			"column count mismatch: %d vs %d", a.Cols(), b.Cols())
	}

	return backend.Combine(ctx, a, b, op)
}

// Chain folds a sequence of operands into one handle by repeated pairwise
// combination, left to right: start op[0] operands[0] op[1] operands[1]...
//
// Used by the engine's assembly step, where the operator sequence encodes
// expressions like M1 + M4 - M5 + M7. len(ops) must equal len(operands).
//
// Parameters:
//   - ctx: Context for cancellation
//   - backend: Backend that owns the handles' storage
//   - start: Leftmost operand
//   - ops: Operator applied at each fold step
//   - operands: Right-hand operand at each fold step
//
// Returns:
//   - types.Matrix: Result of the folded expression
//   - error: First ShapeError encountered, unchanged
func Chain(ctx context.Context, backend types.Backend, start types.Matrix, ops []types.Op, operands []types.Matrix) (types.Matrix, error) {
	acc := start
	for i, m := range operands {
		next, err := Apply(ctx, backend, acc, m, ops[i])
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}
