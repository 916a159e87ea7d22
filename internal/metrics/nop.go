// Package metrics provides MetricsCollector implementations.
package metrics

import (
	"time"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// NopMetrics is a no-op metrics collector that discards all observations.
//
// Used as the default collector when none is supplied.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordMultiply discards the observation.
func (n *NopMetrics) RecordMultiply(_ /* size */ int, _ /* depth */ int, _ /* elapsed */ time.Duration) {
}

// RecordBaseCase discards the observation.
func (n *NopMetrics) RecordBaseCase(_ /* size */ int) {}

// RecordShapeError discards the observation.
func (n *NopMetrics) RecordShapeError(_ /* op */ string) {}
