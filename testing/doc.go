// Package testing provides test utilities for the Strassen library.
//
// This package offers helpers for setting up test environments,
// particularly embedded NATS servers for exercising the KV backend. It
// follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - NewTestLogger: types.Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    strassentest "github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/testing"
//	)
//
//	func TestMyBackend(t *testing.T) {
//	    _, nc := strassentest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
