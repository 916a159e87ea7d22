package types

import "time"

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from concurrent recursive branches and must be
// thread-safe.
type MetricsCollector interface {
	// RecordMultiply records one completed multiply call (recursive or
	// top-level) with the block side length, recursion depth and wall
	// time.
	RecordMultiply(size, depth int, elapsed time.Duration)

	// RecordBaseCase records a recursion branch terminating in direct
	// classical multiplication at the given block side length.
	RecordBaseCase(size int)

	// RecordShapeError records a shape-precondition rejection by the
	// named operation.
	RecordShapeError(op string)
}
