package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandom_Shape(t *testing.T) {
	src := NewRandom(1, 10)
	data := src.Square(8)

	require.Len(t, data, 8)
	for _, row := range data {
		require.Len(t, row, 8)
	}
}

func TestRandom_ValuesWithinBound(t *testing.T) {
	src := NewRandom(2, 5)

	for _, row := range src.Square(16) {
		for _, v := range row {
			require.GreaterOrEqual(t, v, float64(0))
			require.Less(t, v, float64(5))
			require.Equal(t, v, float64(int(v)), "elements must be integral")
		}
	}
}

func TestRandom_SameSeedSameData(t *testing.T) {
	a := NewRandom(42, 100).Square(6)
	b := NewRandom(42, 100).Square(6)

	require.Equal(t, a, b)
}

func TestRandom_DefaultBound(t *testing.T) {
	src := NewRandom(3, 0)

	for _, row := range src.Square(4) {
		for _, v := range row {
			require.Less(t, v, float64(100))
		}
	}
}
