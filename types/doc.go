// Package types provides core type definitions and interfaces for the
// Strassen library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main strassen package and its internal
// implementations.
//
// Key types:
//   - Matrix: Opaque handle to a matrix, local or distributed
//   - Backend: Storage/compute substrate that constructs and transforms handles
//   - Quadrants: The four equal blocks produced by one partition step
//   - Op: Element-wise combination operator (add, subtract)
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
