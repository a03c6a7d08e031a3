package veclen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPass is called after each full kernel pass over the input.
	RecordPass(s Strategy, vectors int, duration time.Duration)

	// RecordRun is called once per completed Run.
	RecordRun(r *Report)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPass(Strategy, int, time.Duration) {}
func (NoopMetricsCollector) RecordRun(*Report)                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PassCount      atomic.Int64
	PassVectors    atomic.Int64
	PassTotalNanos atomic.Int64
	PassMinNanos   atomic.Int64
	PassMaxNanos   atomic.Int64
	RunCount       atomic.Int64
}

// RecordPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPass(_ Strategy, vectors int, duration time.Duration) {
	ns := duration.Nanoseconds()
	if b.PassCount.Add(1) == 1 {
		b.PassMinNanos.Store(ns)
	}
	b.PassVectors.Add(int64(vectors))
	b.PassTotalNanos.Add(ns)

	for {
		cur := b.PassMinNanos.Load()
		if ns >= cur || b.PassMinNanos.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := b.PassMaxNanos.Load()
		if ns <= cur || b.PassMaxNanos.CompareAndSwap(cur, ns) {
			break
		}
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(*Report) {
	b.RunCount.Add(1)
}

// MetricsStats holds a snapshot of collected metrics.
type MetricsStats struct {
	Passes      int64
	Vectors     int64
	Runs        int64
	AvgPassTime time.Duration
	MinPassTime time.Duration
	MaxPassTime time.Duration
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	passes := b.PassCount.Load()
	stats := MetricsStats{
		Passes:      passes,
		Vectors:     b.PassVectors.Load(),
		Runs:        b.RunCount.Load(),
		MinPassTime: time.Duration(b.PassMinNanos.Load()),
		MaxPassTime: time.Duration(b.PassMaxNanos.Load()),
	}
	if passes > 0 {
		stats.AvgPassTime = time.Duration(b.PassTotalNanos.Load() / passes)
	}
	return stats
}
