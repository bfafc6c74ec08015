package banditpam

import "fmt"

// Builder constructs an Estimator fluently, mirroring vecgo's
// HNSW(dim).Method(...).Build() chain: New(k) fixes the medoid count,
// intermediate calls layer on Options, and Build validates and returns
// the finished Estimator.
type Builder struct {
	opts options
}

// New starts a Builder for a k-medoid estimator.
func New(k int, opts ...Option) *Builder {
	o := defaultOptions()
	o.k = k
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{opts: o}
}

// Build validates the accumulated configuration and returns a ready
// Estimator, or an error if the configuration is invalid.
func (b *Builder) Build() (*Estimator, error) {
	if b.opts.k < 1 {
		return nil, &InvalidShapeError{Reason: fmt.Sprintf("k=%d must be >= 1", b.opts.k)}
	}
	if b.opts.algorithm != "BanditPAM" && b.opts.algorithm != "naive" {
		return nil, &InvalidAlgorithmError{Name: b.opts.algorithm}
	}

	logWriter, closer, err := b.opts.openLogWriter()
	if err != nil {
		return nil, fmt.Errorf("banditpam: open log path: %w", err)
	}

	return &Estimator{
		opts:      b.opts,
		logger:    newLogger(logWriter, b.opts.verbosity),
		metrics:   b.opts.metrics,
		logCloser: closer,
	}, nil
}
