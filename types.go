package strassen

import "github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root strassen
// package, while still providing a convenient `strassen.Matrix`,
// `strassen.Backend`, etc. for users.
type (
	Matrix     = types.Matrix
	Backend    = types.Backend
	Quadrants  = types.Quadrants
	Op         = types.Op
	ShapeError = types.ShapeError
)

// Re-export interfaces used by functional options.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export operator constants.
const (
	OpAdd      = types.OpAdd
	OpSubtract = types.OpSubtract
)
