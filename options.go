package veclen

import (
	"github.com/hupe1980/veclen/internal/mem"
)

const (
	// DefaultVectors is the default number of vectors per pass. It is a
	// multiple of every strategy's lane width.
	DefaultVectors = 4 * 1024 * 1024
	// DefaultIterations is the default number of timed passes.
	DefaultIterations = 100
)

type options struct {
	vectors    int
	iterations int
	strategy   Strategy
	auto       bool
	seed       uint64
	allocator  Allocator
	logger     *Logger
	metrics    MetricsCollector
}

func defaultOptions() options {
	return options{
		vectors:    DefaultVectors,
		iterations: DefaultIterations,
		auto:       true,
		allocator:  mem.Default,
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
	}
}

// Option configures a Benchmark.
type Option func(*options)

// WithVectors sets the number of 3-component vectors reduced per pass.
//
// The count must be a multiple of the strategy's lane width; New rejects
// other counts with *ErrLaneRemainder.
func WithVectors(n int) Option {
	return func(o *options) {
		o.vectors = n
	}
}

// WithIterations sets how many times the full pass is repeated. Only the
// timing depends on it; the output of every pass is identical.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithStrategy pins the execution strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
		o.auto = false
	}
}

// WithAutoStrategy selects the widest strategy the CPU runs natively (default).
func WithAutoStrategy() Option {
	return func(o *options) {
		o.auto = true
	}
}

// WithSeed fixes the seed of the input generator. Zero (default) seeds from
// the clock.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithAllocator sets the allocator backing the input and output buffers.
//
// If nil is passed, the heap BlockAllocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = mem.Default
		}
		o.allocator = a
	}
}

// WithLogger sets a custom logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets a custom metrics collector.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
