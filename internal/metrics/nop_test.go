package metrics

import (
	"testing"
	"time"
)

func TestNopMetrics_AllMethodsAreSafe(t *testing.T) {
	n := NewNop()

	// No-op collector must accept any input without side effects.
	n.RecordMultiply(1024, 0, time.Second)
	n.RecordBaseCase(64)
	n.RecordShapeError("partition")
}
