// Package source provides built-in matrix data sources.
//
// Sources produce local dense data that collaborators distribute through a
// backend before calling the engine. The package includes:
//
//   - Random: Seeded pseudo-random square matrices for demos and benchmarks
//   - CSV: Dense matrices loaded from CSV files
//
// Custom sources only need to produce [][]float64 with equal-length rows.
package source
