package banditpam

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives counters for a fit's major events. Mirrors
// vecgo's MetricsCollector contract: an interface so callers can wire in
// their own backend (Prometheus, StatsD, ...) while NoopMetricsCollector
// keeps the cost of not caring at zero. RecordFit is called exactly once
// per Fit call, success or failure, independent of verbosity: dur is the
// wall-clock time spent, k/n/dims describe the problem shape, and err is
// whatever Fit returned (nil on success).
type MetricsCollector interface {
	RecordFit(dur time.Duration, k, n, dims int, err error)
	RecordBuildStep()
	RecordSwapStep()
}

// NoopMetricsCollector discards everything. It is the default collector
// when none is configured.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(time.Duration, int, int, int, error) {}
func (NoopMetricsCollector) RecordBuildStep()                             {}
func (NoopMetricsCollector) RecordSwapStep()                              {}

// BasicMetricsCollector accumulates counters in-process using atomics,
// readable concurrently with Fit via Snapshot.
type BasicMetricsCollector struct {
	fits          atomic.Int64
	fitErrors     atomic.Int64
	buildSteps    atomic.Int64
	swapSteps     atomic.Int64
	totalFitNanos atomic.Int64
}

func (m *BasicMetricsCollector) RecordFit(dur time.Duration, k, n, dims int, err error) {
	m.fits.Add(1)
	m.totalFitNanos.Add(int64(dur))
	if err != nil {
		m.fitErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordBuildStep() { m.buildSteps.Add(1) }
func (m *BasicMetricsCollector) RecordSwapStep()  { m.swapSteps.Add(1) }

// MetricsSnapshot is a point-in-time read of a BasicMetricsCollector.
type MetricsSnapshot struct {
	Fits         int64
	FitErrors    int64
	BuildSteps   int64
	SwapSteps    int64
	TotalFitTime time.Duration
}

// Snapshot returns the collector's current counters.
func (m *BasicMetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Fits:         m.fits.Load(),
		FitErrors:    m.fitErrors.Load(),
		BuildSteps:   m.buildSteps.Load(),
		SwapSteps:    m.swapSteps.Load(),
		TotalFitTime: time.Duration(m.totalFitNanos.Load()),
	}
}
