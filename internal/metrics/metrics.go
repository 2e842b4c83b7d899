// SPDX-License-Identifier: MPL-2.0

// Package metrics defines the Prometheus instruments recorded by the powcalc
// boundary and web server.
//
// A nil *Metrics is valid and records nothing, so library callers that do not
// care about observability can pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Path labels identify which boundary operation produced an observation.
const (
	PathSmall  = "small"
	PathExact  = "exact"
	PathBuffer = "buffer"
	PathDigits = "digits"
)

// Result labels classify the outcome of a boundary call.
const (
	ResultOK       = "ok"
	ResultFallback = "fallback"
	ResultInvalid  = "invalid"
	ResultTooLarge = "too_large"
)

// Metrics holds the registered instruments.
type Metrics struct {
	computations   *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	resultDigits   prometheus.Histogram
	bufferCapacity prometheus.Gauge
	bufferGrows    prometheus.Counter
	httpRequests   *prometheus.CounterVec
}

// New registers the powcalc instruments with reg.
// Registering twice on the same registry panics, as with promauto.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "powcalc_computations_total",
			Help: "Boundary power computations by path and result",
		}, []string{"path", "result"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "powcalc_computation_duration_seconds",
			Help:    "Time spent computing a power, by path",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"path"}),

		resultDigits: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "powcalc_result_digits",
			Help:    "Decimal digit count of exact results",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		bufferCapacity: factory.NewGauge(prometheus.GaugeOpts{
			Name: "powcalc_result_buffer_capacity_bytes",
			Help: "Current capacity of the shared result buffer",
		}),

		bufferGrows: factory.NewCounter(prometheus.CounterOpts{
			Name: "powcalc_result_buffer_grows_total",
			Help: "Number of times the shared result buffer was reallocated",
		}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "powcalc_http_requests_total",
			Help: "HTTP requests served by route and status code",
		}, []string{"route", "code"}),
	}
}

// ObserveComputation records one boundary call.
func (m *Metrics) ObserveComputation(path, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(path, result).Inc()
	if result == ResultOK {
		m.duration.WithLabelValues(path).Observe(elapsed.Seconds())
	}
}

// ObserveDigits records the size of an exact result.
func (m *Metrics) ObserveDigits(n int) {
	if m == nil {
		return
	}
	m.resultDigits.Observe(float64(n))
}

// BufferGrown records a reallocation of the shared buffer.
func (m *Metrics) BufferGrown(newCap int) {
	if m == nil {
		return
	}
	m.bufferGrows.Inc()
	m.bufferCapacity.Set(float64(newCap))
}

// BufferReleased records that the shared buffer dropped its storage.
func (m *Metrics) BufferReleased() {
	if m == nil {
		return
	}
	m.bufferCapacity.Set(0)
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, code string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, code).Inc()
}
