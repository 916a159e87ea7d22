package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus.
//
// Registration is lazy: collectors are created and registered on first
// observation so constructing the collector never panics on duplicate
// registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	multiplyDuration *prometheus.HistogramVec
	baseCaseCounter  *prometheus.CounterVec
	shapeErrCounter  *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "strassen" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "strassen"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.multiplyDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "multiply_duration_seconds",
			Help:      "Wall time of multiply calls by recursion depth.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"depth"})

		p.baseCaseCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "base_case_total",
			Help:      "Recursion branches terminated by direct multiplication, by block size.",
		}, []string{"size"})

		p.shapeErrCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "shape_errors_total",
			Help:      "Shape-precondition rejections by operation.",
		}, []string{"op"})

		p.reg.MustRegister(p.multiplyDuration, p.baseCaseCounter, p.shapeErrCounter)
	})
}

// RecordMultiply records one completed multiply call.
func (p *PrometheusCollector) RecordMultiply(_ /* size */ int, depth int, elapsed time.Duration) {
	p.ensureRegistered()
	p.multiplyDuration.WithLabelValues(strconv.Itoa(depth)).Observe(elapsed.Seconds())
}

// RecordBaseCase records a direct-multiplication branch termination.
func (p *PrometheusCollector) RecordBaseCase(size int) {
	p.ensureRegistered()
	p.baseCaseCounter.WithLabelValues(strconv.Itoa(size)).Inc()
}

// RecordShapeError records a shape rejection by the named operation.
func (p *PrometheusCollector) RecordShapeError(op string) {
	p.ensureRegistered()
	p.shapeErrCounter.WithLabelValues(op).Inc()
}
