package banditpam

import (
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

type options struct {
	k               int
	algorithm       string
	maxIter         int
	buildConfidence float64
	swapConfidence  float64
	verbosity       int
	logPath         string
	seed            int64
	batchSize       int
	numWorkers      int
	precomputed     *mat.SymDense
	metrics         MetricsCollector
}

func defaultOptions() options {
	return options{
		k:               5,
		algorithm:       "BanditPAM",
		maxIter:         1000,
		buildConfidence: 1000,
		swapConfidence:  10000,
		verbosity:       0,
		seed:            0,
		batchSize:       100,
		numWorkers:      0, // 0 defers to runtime.GOMAXPROCS(0) in workerpool.New
		metrics:         NoopMetricsCollector{},
	}
}

// Option configures an Estimator at construction time, following the
// same functional-options shape vecgo's builder uses for its index
// configuration.
type Option func(*options)

// WithAlgorithm selects "BanditPAM" (default) or "naive".
func WithAlgorithm(name string) Option {
	return func(o *options) { o.algorithm = name }
}

// WithMaxIter bounds the number of SWAP iterations (default 1000).
func WithMaxIter(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// WithBuildConfidence sets the UCB confidence constant BUILD rounds use
// (default 1000).
func WithBuildConfidence(c float64) Option {
	return func(o *options) { o.buildConfidence = c }
}

// WithSwapConfidence sets the UCB confidence constant SWAP rounds use
// (default 10000).
func WithSwapConfidence(c float64) Option {
	return func(o *options) { o.swapConfidence = c }
}

// WithVerbosity enables per-iteration diagnostic logging when v > 0.
func WithVerbosity(v int) Option {
	return func(o *options) { o.verbosity = v }
}

// WithLogPath directs diagnostic records to a file instead of stderr.
func WithLogPath(path string) Option {
	return func(o *options) { o.logPath = path }
}

// WithSeed fixes the reference-sampling source's seed, making a fit
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithBatchSize sets the number of reference points sampled per UCB
// round (default 100).
func WithBatchSize(b int) Option {
	return func(o *options) { o.batchSize = b }
}

// WithWorkers sets the worker pool size used for data-parallel UCB arm
// evaluation. n<=0 defers to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.numWorkers = n }
}

// WithMetrics installs a MetricsCollector. The default is a no-op.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) { o.metrics = m }
}

// WithPrecomputedDistances short-circuits the loss function with an
// n-by-n symmetric distance matrix computed ahead of time. When set,
// Fit's loss argument is still validated but never evaluated.
func WithPrecomputedDistances(d *mat.SymDense) Option {
	return func(o *options) { o.precomputed = d }
}

func (o *options) openLogWriter() (io.Writer, io.Closer, error) {
	if o.logPath == "" {
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(o.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
