package strassen

import "github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"

// Sentinel errors returned by the Engine, re-exported from the types
// subpackage so callers can check them without an extra import.
var (
	// ErrShape is the base error for every shape-precondition violation.
	ErrShape = types.ErrShape

	// ErrStorage indicates a failure in a backend's storage substrate.
	ErrStorage = types.ErrStorage

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrBackendRequired is returned when a nil backend is passed to New.
	ErrBackendRequired = types.ErrBackendRequired
)
