package banditpam

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/banditpam/banditpam/cache"
	"github.com/banditpam/banditpam/dataset"
	"github.com/banditpam/banditpam/internal/rng"
	"github.com/banditpam/banditpam/internal/workerpool"
	"github.com/banditpam/banditpam/loss"
	"github.com/banditpam/banditpam/pam"
	"github.com/banditpam/banditpam/snapshot"
)

// Estimator is the stateful k-medoids clustering engine: configuration
// is fixed at construction (via Builder), and dataset-dependent state
// (M_build, M_final, A, step count) is born inside Fit, lives for its
// duration, and persists afterward as read-only output. A second Fit
// call discards all prior dataset-dependent state.
type Estimator struct {
	opts      options
	logger    *Logger
	metrics   MetricsCollector
	logCloser io.Closer

	mu             sync.Mutex
	lossName       string
	mBuild         []int
	mFinal         []int
	assignments    []int
	steps          int
	maxIterReached bool
}

// Fit runs BUILD then SWAP against X under the named loss, replacing any
// prior fit's state. ctx is checked between BUILD insertions and SWAP
// iterations; cancellation stops the algorithm early with whatever
// medoids and assignments it has so far, same as hitting maxIter.
func (e *Estimator) Fit(ctx context.Context, X *dataset.Dataset, lossName string) (err error) {
	start := time.Now()
	defer func() {
		e.metrics.RecordFit(time.Since(start), e.opts.k, X.N(), X.D(), err)
	}()

	if X.N() == 0 {
		err = &InvalidShapeError{Reason: "dataset has zero columns"}
		return err
	}
	if e.opts.k > X.N() {
		err = &InvalidShapeError{Reason: fmt.Sprintf("k=%d exceeds n=%d", e.opts.k, X.N())}
		return err
	}

	lossFn, resolveErr := loss.Resolve(lossName)
	if resolveErr != nil {
		err = translateError(resolveErr)
		return err
	}

	var compute cache.Compute
	if e.opts.precomputed != nil {
		pre := e.opts.precomputed
		compute = func(i, j int) float64 { return pre.At(i, j) }
	} else {
		compute = func(i, j int) float64 { return lossFn(X, i, j) }
	}
	dist := cache.New(compute, 0)

	pool := workerpool.New(e.opts.numWorkers)
	defer pool.Close()
	sampler := rng.New(e.opts.seed)

	mBuild, _, buildErr := e.runBuild(ctx, X.N(), dist, pool, sampler)
	if buildErr != nil {
		err = buildErr
		return err
	}

	mFinal, finalAssign, steps, maxIterReached := e.runSwap(ctx, X.N(), mBuild, dist, pool, sampler)

	e.mu.Lock()
	e.lossName = lossName
	e.mBuild = mBuild
	e.mFinal = mFinal
	e.assignments = finalAssign.A
	e.steps = steps
	e.maxIterReached = maxIterReached
	e.mu.Unlock()

	e.logger.LogFitComplete(mBuild, mFinal, steps, maxIterReached)
	return nil
}

func (e *Estimator) runBuild(ctx context.Context, n int, dist cache.Distancer, pool *workerpool.Pool, sampler *rng.RNG) ([]int, *pam.Assignment, error) {
	switch e.opts.algorithm {
	case "naive":
		mBuild, asn := pam.NaiveBuild(ctx, n, e.opts.k, dist)
		return mBuild, asn, nil
	case "BanditPAM":
		cfg := pam.BanditConfig{ConfConst: e.opts.buildConfidence, BatchSize: e.opts.batchSize, Pool: pool, RNG: sampler}
		mBuild, asn, steps := pam.BanditBuild(ctx, n, e.opts.k, dist, cfg)
		for i, s := range steps {
			e.metrics.RecordBuildStep()
			e.logger.LogBuildStep(i, s.Inserted, s.Loss, s.Round.Sigmas)
			e.logger.LogDispersion("build", s.Round.Sigmas)
		}
		return mBuild, asn, nil
	default:
		return nil, nil, &InvalidAlgorithmError{Name: e.opts.algorithm}
	}
}

func (e *Estimator) runSwap(ctx context.Context, n int, mBuild []int, dist cache.Distancer, pool *workerpool.Pool, sampler *rng.RNG) ([]int, *pam.Assignment, int, bool) {
	switch e.opts.algorithm {
	case "naive":
		return pam.NaiveSwap(ctx, n, e.opts.k, mBuild, dist, e.opts.maxIter)
	default: // "BanditPAM", already validated at Build time
		cfg := pam.BanditConfig{ConfConst: e.opts.swapConfidence, BatchSize: e.opts.batchSize, Pool: pool, RNG: sampler}
		mFinal, asn, steps, maxIterReached, history := pam.BanditSwap(ctx, n, e.opts.k, mBuild, dist, cfg, e.opts.maxIter)
		for i, s := range history {
			e.metrics.RecordSwapStep()
			e.logger.LogSwapStep(i, s.Position, s.Candidate, s.Loss, s.Round.Sigmas)
			e.logger.LogDispersion("swap", s.Round.Sigmas)
		}
		return mFinal, asn, steps, maxIterReached
	}
}

// MBuild returns the medoid indices BUILD produced, before any SWAP
// refinement.
func (e *Estimator) MBuild() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.mBuild...)
}

// MFinal returns the medoid indices after SWAP refinement.
func (e *Estimator) MFinal() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.mFinal...)
}

// Assignments returns, for every point, the position within MFinal it
// was assigned to.
func (e *Estimator) Assignments() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.assignments...)
}

// Steps returns the number of SWAP iterations performed.
func (e *Estimator) Steps() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.steps
}

// MaxIterReached reports whether SWAP stopped because it hit maxIter
// rather than reaching a fixed point. Not an error: M_final and
// Assignments remain valid.
func (e *Estimator) MaxIterReached() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxIterReached
}

// ExportSnapshot serializes the most recent Fit's results and writes them
// to store under name, so a caller can archive or transfer a completed
// clustering without rerunning it. Fit must have succeeded at least once;
// calling this beforehand exports zero-valued medoids/assignments.
func (e *Estimator) ExportSnapshot(ctx context.Context, store snapshot.Store, name string) error {
	e.mu.Lock()
	payload := snapshot.Payload{
		K:       e.opts.k,
		Loss:    e.lossName,
		Seed:    e.opts.seed,
		MBuild:  append([]int(nil), e.mBuild...),
		MFinal:  append([]int(nil), e.mFinal...),
		A:       append([]int(nil), e.assignments...),
		Steps:   e.steps,
		MaxIter: e.maxIterReached,
	}
	e.mu.Unlock()

	data, err := snapshot.Encode(payload)
	if err != nil {
		return fmt.Errorf("banditpam: export snapshot: %w", err)
	}
	return store.Put(ctx, name, data)
}

// Close releases the log file opened via WithLogPath, if any.
func (e *Estimator) Close() error {
	if e.logCloser == nil {
		return nil
	}
	return e.logCloser.Close()
}
