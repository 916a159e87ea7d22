package strassen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/backend/dense"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/direct"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

func newDenseEngine(t *testing.T, cfg Config) (*Engine, *dense.Backend) {
	t.Helper()

	be := dense.New()
	engine, err := New(&cfg, be)
	require.NoError(t, err)

	return engine, be
}

func mustDistribute(t *testing.T, be Backend, data [][]float64) Matrix {
	t.Helper()

	m, err := be.Distribute(context.Background(), data)
	require.NoError(t, err)

	return m
}

func materialize(t *testing.T, m Matrix) [][]float64 {
	t.Helper()

	data, err := m.Materialize(context.Background())
	require.NoError(t, err)

	return data
}

// classicalProduct is the independent reference the engine is checked
// against.
func classicalProduct(a, b [][]float64) [][]float64 {
	n := len(a)
	p := len(b[0])
	k := len(b)

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			var sum float64
			for t := 0; t < k; t++ {
				sum += a[i][t] * b[t][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

func randomSquare(rng *rand.Rand, n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, n)
		for j := range row {
			row[j] = float64(rng.Intn(19) - 9)
		}
		data[i] = row
	}

	return data
}

func TestNew_RequiresBackend(t *testing.T) {
	_, err := New(&Config{}, nil)

	require.ErrorIs(t, err, ErrBackendRequired)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{BaseCaseSize: -1}, dense.New())

	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	engine, err := New(nil, dense.New())

	require.NoError(t, err)
	require.Equal(t, DefaultBaseCaseSize, engine.cfg.BaseCaseSize)
}

func TestMultiply_OneFullRecursionStep(t *testing.T) {
	// 2x2 with BaseCaseSize 1 exercises exactly one Strassen level; the
	// expected values are hand-computed from the M1..M7 formulas.
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})
	a := mustDistribute(t, be, [][]float64{{1, 2}, {3, 4}})
	b := mustDistribute(t, be, [][]float64{{5, 6}, {7, 8}})

	c, err := engine.Multiply(context.Background(), a, b, 2)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, materialize(t, c))
}

func TestMultiply_IdentityTimesArbitrary(t *testing.T) {
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 2})

	identity := make([][]float64, 4)
	for i := range identity {
		identity[i] = make([]float64, 4)
		identity[i][i] = 1
	}
	arbitrary := [][]float64{
		{3, 1, 4, 1},
		{5, 9, 2, 6},
		{5, 3, 5, 8},
		{9, 7, 9, 3},
	}

	a := mustDistribute(t, be, identity)
	b := mustDistribute(t, be, arbitrary)

	c, err := engine.Multiply(context.Background(), a, b, 4)
	require.NoError(t, err)

	require.Equal(t, arbitrary, materialize(t, c))
}

func TestMultiply_ZeroMatrix(t *testing.T) {
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})

	zero := make([][]float64, 4)
	for i := range zero {
		zero[i] = make([]float64, 4)
	}
	b := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	c, err := engine.Multiply(context.Background(),
		mustDistribute(t, be, zero), mustDistribute(t, be, b), 4)
	require.NoError(t, err)

	require.Equal(t, zero, materialize(t, c))
}

func TestMultiply_MismatchedShapesFailBeforeRecursion(t *testing.T) {
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})
	a := mustDistribute(t, be, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	b := mustDistribute(t, be, [][]float64{{1, 2}, {3, 4}})

	_, err := engine.Multiply(context.Background(), a, b, 4)

	require.ErrorIs(t, err, ErrShape)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "multiply", shapeErr.Op)
}

func TestMultiply_NonPowerOfTwoFailsAtOddSplit(t *testing.T) {
	// 6x6 halves once to 3x3 blocks; the next level cannot halve an odd
	// side and must surface a ShapeError. Inputs need padding to a power
	// of two by the caller.
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})

	data := make([][]float64, 6)
	for i := range data {
		data[i] = make([]float64, 6)
		for j := range data[i] {
			data[i][j] = float64(i*6 + j)
		}
	}

	_, err := engine.Multiply(context.Background(),
		mustDistribute(t, be, data), mustDistribute(t, be, data), 6)

	require.ErrorIs(t, err, ErrShape)
	require.Contains(t, err.Error(), "odd")
}

func TestMultiply_BaseCaseEquivalence(t *testing.T) {
	// At or below BaseCaseSize the engine must produce exactly what
	// direct multiplication produces on the same inputs.
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 8})
	rng := rand.New(rand.NewSource(7))

	dataA := randomSquare(rng, 4)
	dataB := randomSquare(rng, 4)
	a := mustDistribute(t, be, dataA)
	b := mustDistribute(t, be, dataB)

	viaEngine, err := engine.Multiply(context.Background(), a, b, 4)
	require.NoError(t, err)

	viaDirect, err := direct.Multiply(context.Background(), be, a, b)
	require.NoError(t, err)

	require.Equal(t, materialize(t, viaDirect), materialize(t, viaEngine))
}

func TestMultiply_MatchesClassicalReference(t *testing.T) {
	sizes := []int{2, 4, 8, 16}
	rng := rand.New(rand.NewSource(42))

	for _, n := range sizes {
		engine, be := newDenseEngine(t, Config{BaseCaseSize: 2})

		dataA := randomSquare(rng, n)
		dataB := randomSquare(rng, n)

		c, err := engine.Multiply(context.Background(),
			mustDistribute(t, be, dataA), mustDistribute(t, be, dataB), n)
		require.NoError(t, err)

		require.Equal(t, classicalProduct(dataA, dataB), materialize(t, c),
			"product mismatch at size %d", n)
	}
}

func TestMultiply_SequentialAndParallelAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dataA := randomSquare(rng, 16)
	dataB := randomSquare(rng, 16)

	sequential, beSeq := newDenseEngine(t, Config{BaseCaseSize: 2, MaxParallel: 1})
	parallel, bePar := newDenseEngine(t, Config{BaseCaseSize: 2, MaxParallel: 8})

	seqResult, err := sequential.Multiply(context.Background(),
		mustDistribute(t, beSeq, dataA), mustDistribute(t, beSeq, dataB), 16)
	require.NoError(t, err)

	parResult, err := parallel.Multiply(context.Background(),
		mustDistribute(t, bePar, dataA), mustDistribute(t, bePar, dataB), 16)
	require.NoError(t, err)

	require.Equal(t, materialize(t, seqResult), materialize(t, parResult))
}

func TestMultiply_CancelledContext(t *testing.T) {
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})
	a := mustDistribute(t, be, [][]float64{{1, 2}, {3, 4}})
	b := mustDistribute(t, be, [][]float64{{5, 6}, {7, 8}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Multiply(ctx, a, b, 2)

	require.ErrorIs(t, err, context.Canceled)
}

func TestMultiply_ShapeErrorPropagatesUnwrapped(t *testing.T) {
	// A shape failure deep in the recursion must reach the caller as the
	// original ShapeError, not rewrapped per level.
	engine, be := newDenseEngine(t, Config{BaseCaseSize: 1})

	data := make([][]float64, 6)
	for i := range data {
		data[i] = make([]float64, 6)
	}

	_, err := engine.Multiply(context.Background(),
		mustDistribute(t, be, data), mustDistribute(t, be, data), 6)

	var shapeErr *types.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "partition", shapeErr.Op)
	require.Equal(t, err, error(shapeErr))
}
