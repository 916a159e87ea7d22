package source

import (
	"math/rand"
)

// Random generates seeded pseudo-random square matrices.
//
// The same seed always yields the same sequence of matrices, which keeps
// demo runs and benchmarks reproducible.
type Random struct {
	rng *rand.Rand
	max int
}

// NewRandom creates a random matrix source.
//
// Parameters:
//   - seed: Seed for the underlying PRNG
//   - max: Exclusive upper bound for generated integer elements (values
//     fall in [0, max)); defaults to 100 if <= 0
//
// Returns:
//   - *Random: Initialized source
//
// Example:
//
//	src := source.NewRandom(42, 10)
//	data := src.Square(1024)
func NewRandom(seed int64, max int) *Random {
	if max <= 0 {
		max = 100
	}

	return &Random{rng: rand.New(rand.NewSource(seed)), max: max}
}

// Square generates an n×n matrix of small integer values stored as
// float64, so products stay exact.
//
// Parameters:
//   - n: Side length
//
// Returns:
//   - [][]float64: Freshly allocated n×n data
func (r *Random) Square(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, n)
		for j := range row {
			row[j] = float64(r.rng.Intn(r.max))
		}
		data[i] = row
	}

	return data
}
