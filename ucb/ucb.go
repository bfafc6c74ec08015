// Package ucb implements the upper-confidence-bound arm-elimination loop
// shared by the bandit core's BUILD and SWAP steps. Both steps reduce to
// "pick the arm with the lowest expected target contribution, estimated
// by repeatedly sampling batches of reference points, narrowing confidence
// intervals and dropping every arm whose lower bound sits above the best
// lower bound, until one arm remains or the reference population is
// exhausted" — this package implements that reduction once, and BUILD/SWAP
// supply only their own Contribution function and arm set.
package ucb

import (
	"math"

	"github.com/banditpam/banditpam/internal/rng"
	"github.com/banditpam/banditpam/internal/workerpool"
	"gonum.org/v1/gonum/stat"
)

// Contribution computes arm a's per-reference-point target contribution
// against reference point ref. Lower is better: the loop looks for the
// arm minimizing the expected value of this function over the reference
// distribution.
type Contribution func(a, ref int) float64

// ArmStat holds one arm's running statistics across rounds of sampling.
type ArmStat struct {
	Mean  float64 // mu-hat(a): running mean of Contribution(a, .)
	Sigma float64 // dispersion estimate, fixed for the lifetime of a Round
	Count int     // T(a): number of reference points folded into Mean so far
}

// confidenceWidth returns the UCB half-width C(a) for an arm with the
// given dispersion estimate and sample count, evaluated against a
// reference distribution of size n and confidence constant confConst.
// A higher confConst widens every arm's interval and makes elimination
// more conservative (fewer, safer cuts per round); a confConst near 1
// matches the tightest defensible bound.
func confidenceWidth(sigma float64, count, n int, confConst float64) float64 {
	if count <= 0 {
		return math.Inf(1)
	}
	logTerm := math.Log(float64(n))
	if logTerm <= 0 {
		logTerm = 1
	}
	return sigma * math.Sqrt(confConst*logTerm/float64(count))
}

// Round runs one UCB elimination over a fixed set of arms, sharing a
// single Contribution function and reference-point population [0, n).
// Arms are addressed by a dense position in [0, NumArms); callers map
// that position back to domain meaning (a candidate medoid index for
// BUILD, a (medoid, candidate) pair for SWAP) via Result.Winner.
type Round struct {
	NumArms      int
	N            int // size of the reference-point population
	Contribution Contribution
	ConfConst    float64
	BatchSize    int
	Pool         *workerpool.Pool
	RNG          *rng.RNG
}

// Result is the outcome of one Round: the winning arm's position, the
// final statistics for every arm that was ever evaluated (losers keep
// their last known stats), and the dispersion summary computed at the
// start of the round.
type Result struct {
	Winner int
	Stats  []ArmStat
	Sigmas Summary
	Rounds int
}

// Run executes the elimination loop: estimate each arm's dispersion from
// one batch, then repeatedly sample fresh batches and narrow confidence
// intervals, dropping any arm whose interval floor exceeds the best
// interval's floor, until one arm remains or every arm has been sampled
// against the whole reference population. Ties at exhaustion are broken
// by exact mean.
func (r *Round) Run() Result {
	stats := make([]ArmStat, r.NumArms)
	active := newArmSet(r.NumArms)

	r.estimateDispersion(stats)
	sigmas := make([]float64, r.NumArms)
	for i, s := range stats {
		sigmas[i] = s.Sigma
	}

	rounds := 0
	for active.len() > 1 && !r.exhausted(stats, active) {
		rounds++
		batch := r.RNG.SampleWithoutReplacement(r.N, r.BatchSize)
		r.evaluateBatch(stats, active, batch)
		r.prune(stats, active)
	}

	winner := r.bestByMean(stats, active)
	return Result{
		Winner: winner,
		Stats:  stats,
		Sigmas: summarize(sigmas),
		Rounds: rounds,
	}
}

// estimateDispersion draws one batch of reference points and sets every
// arm's Sigma from the sample standard deviation of its contributions
// over that batch, without yet updating Mean/Count.
func (r *Round) estimateDispersion(stats []ArmStat) {
	batch := r.RNG.SampleWithoutReplacement(r.N, r.BatchSize)
	if len(batch) == 0 {
		return
	}

	r.Pool.ParallelFor(r.NumArms, func(a int) {
		if len(batch) < 2 {
			stats[a].Sigma = 0
			return
		}
		values := make([]float64, len(batch))
		for i, ref := range batch {
			values[i] = r.Contribution(a, ref)
		}
		_, sigma := stat.MeanStdDev(values, nil)
		stats[a].Sigma = sigma
	})
}

// evaluateBatch folds one fresh batch's contributions into every active
// arm's running mean, dispatched across the worker pool.
func (r *Round) evaluateBatch(stats []ArmStat, active *armSet, batch []int) {
	if len(batch) == 0 {
		return
	}
	arms := active.slice()
	r.Pool.ParallelFor(len(arms), func(idx int) {
		a := arms[idx]
		sum := 0.0
		for _, ref := range batch {
			sum += r.Contribution(a, ref)
		}
		batchMean := sum / float64(len(batch))

		oldCount := stats[a].Count
		newCount := oldCount + len(batch)
		if oldCount == 0 {
			stats[a].Mean = batchMean
		} else {
			stats[a].Mean = (stats[a].Mean*float64(oldCount) + batchMean*float64(len(batch))) / float64(newCount)
		}
		stats[a].Count = newCount
	})
}

// prune drops every active arm whose confidence interval floor sits
// above the best floor by more than a small numerical-tolerance margin.
func (r *Round) prune(stats []ArmStat, active *armSet) {
	bestFloor := math.Inf(1)
	active.each(func(a int) {
		floor := stats[a].Mean - confidenceWidth(stats[a].Sigma, stats[a].Count, r.N, r.ConfConst)
		if floor < bestFloor {
			bestFloor = floor
		}
	})

	const tolerance = 1e-3
	var losers []int
	active.each(func(a int) {
		floor := stats[a].Mean - confidenceWidth(stats[a].Sigma, stats[a].Count, r.N, r.ConfConst)
		if floor > bestFloor+tolerance {
			losers = append(losers, a)
		}
	})
	for _, a := range losers {
		active.remove(a)
	}
}

// exhausted reports whether every active arm has been sampled against
// the full reference population, at which point its running mean is
// treated as exact and further rounds cannot narrow anything further.
func (r *Round) exhausted(stats []ArmStat, active *armSet) bool {
	allExhausted := true
	active.each(func(a int) {
		if stats[a].Count < r.N {
			allExhausted = false
		}
	})
	return allExhausted
}

// bestByMean picks the active arm with the lowest running mean,
// breaking the final tie after either natural convergence to a single
// arm or exhaustion of the whole reference population.
func (r *Round) bestByMean(stats []ArmStat, active *armSet) int {
	best := -1
	bestMean := math.Inf(1)
	active.each(func(a int) {
		if stats[a].Mean < bestMean {
			bestMean = stats[a].Mean
			best = a
		}
	})
	return best
}
