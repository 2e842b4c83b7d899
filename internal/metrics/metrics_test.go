// SPDX-License-Identifier: MPL-2.0

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveComputation(PathExact, ResultOK, time.Millisecond)
	m.ObserveDigits(10)
	m.BufferGrown(64)
	m.BufferReleased()
	m.ObserveRequest("/api/power", "200")
}

func TestObserveComputation(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.ObserveComputation(PathExact, ResultOK, time.Millisecond)
	m.ObserveComputation(PathExact, ResultOK, time.Millisecond)
	m.ObserveComputation(PathSmall, ResultFallback, 0)

	if got := testutil.ToFloat64(m.computations.WithLabelValues(PathExact, ResultOK)); got != 2 {
		t.Errorf("exact/ok counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.computations.WithLabelValues(PathSmall, ResultFallback)); got != 1 {
		t.Errorf("small/fallback counter = %v, want 1", got)
	}
}

func TestBufferGauge(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.BufferGrown(62)
	if got := testutil.ToFloat64(m.bufferCapacity); got != 62 {
		t.Errorf("capacity gauge = %v, want 62", got)
	}
	if got := testutil.ToFloat64(m.bufferGrows); got != 1 {
		t.Errorf("grows counter = %v, want 1", got)
	}

	m.BufferReleased()
	if got := testutil.ToFloat64(m.bufferCapacity); got != 0 {
		t.Errorf("capacity gauge after release = %v, want 0", got)
	}
}
