package dense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

func TestDistribute_MaterializeRoundTrip(t *testing.T) {
	be := New()
	data := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}

	m, err := be.Distribute(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	got, err := m.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDistribute_CopiesInput(t *testing.T) {
	be := New()
	data := [][]float64{{1, 2}, {3, 4}}

	m, err := be.Distribute(context.Background(), data)
	require.NoError(t, err)

	data[0][0] = 99

	got, err := m.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, float64(1), got[0][0])
}

func TestDistribute_RejectsRaggedRows(t *testing.T) {
	be := New()
	data := [][]float64{
		{1, 2, 3},
		{4, 5},
	}

	_, err := be.Distribute(context.Background(), data)

	require.ErrorIs(t, err, types.ErrShape)
}

func TestMaterialize_CallerOwnsResult(t *testing.T) {
	be := New()
	m, err := be.Distribute(context.Background(), [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	first, err := m.Materialize(context.Background())
	require.NoError(t, err)
	first[1][1] = -1

	second, err := m.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, float64(4), second[1][1])
}

func TestConcatCols(t *testing.T) {
	be := New()
	left, err := be.Distribute(context.Background(), [][]float64{{1}, {3}})
	require.NoError(t, err)
	right, err := be.Distribute(context.Background(), [][]float64{{2}, {4}})
	require.NoError(t, err)

	joined, err := be.ConcatCols(context.Background(), left, right)
	require.NoError(t, err)

	got, err := joined.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
}

func TestConcatCols_RejectsRowMismatch(t *testing.T) {
	be := New()
	left, err := be.Distribute(context.Background(), [][]float64{{1}})
	require.NoError(t, err)
	right, err := be.Distribute(context.Background(), [][]float64{{2}, {3}})
	require.NoError(t, err)

	_, err = be.ConcatCols(context.Background(), left, right)
	require.ErrorIs(t, err, types.ErrShape)
}

func TestStackRows(t *testing.T) {
	be := New()
	top, err := be.Distribute(context.Background(), [][]float64{{1, 2}})
	require.NoError(t, err)
	bottom, err := be.Distribute(context.Background(), [][]float64{{3, 4}})
	require.NoError(t, err)

	stacked, err := be.StackRows(context.Background(), top, bottom)
	require.NoError(t, err)

	got, err := stacked.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
}

func TestStackRows_RejectsColumnMismatch(t *testing.T) {
	be := New()
	top, err := be.Distribute(context.Background(), [][]float64{{1, 2}})
	require.NoError(t, err)
	bottom, err := be.Distribute(context.Background(), [][]float64{{3}})
	require.NoError(t, err)

	_, err = be.StackRows(context.Background(), top, bottom)
	require.ErrorIs(t, err, types.ErrShape)
}

func TestCombine_AddAndSubtract(t *testing.T) {
	be := New()
	a, err := be.Distribute(context.Background(), [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := be.Distribute(context.Background(), [][]float64{{4, 3}, {2, 1}})
	require.NoError(t, err)

	sum, err := be.Combine(context.Background(), a, b, types.OpAdd)
	require.NoError(t, err)
	gotSum, err := sum.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 5}, {5, 5}}, gotSum)

	diff, err := be.Combine(context.Background(), a, b, types.OpSubtract)
	require.NoError(t, err)
	gotDiff, err := diff.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, -1}, {1, 3}}, gotDiff)
}

func TestPartition_QuadrantsAreIndependentCopies(t *testing.T) {
	be := New()
	m, err := be.Distribute(context.Background(), [][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	quads, err := be.Partition(context.Background(), m)
	require.NoError(t, err)

	q11, err := quads.Q11.Materialize(context.Background())
	require.NoError(t, err)
	q11[0][0] = 42

	original, err := m.Materialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, float64(1), original[0][0])
}
