package pam

import (
	"context"
	"math"

	"github.com/banditpam/banditpam/cache"
	"github.com/banditpam/banditpam/internal/rng"
	"github.com/banditpam/banditpam/internal/workerpool"
	"github.com/banditpam/banditpam/ucb"
)

// BanditConfig bundles the resources a bandit-accelerated phase needs:
// the confidence constant for its UCB rounds, the per-round reference
// batch size, a worker pool for data-parallel arm evaluation, and the
// seeded sampler.
type BanditConfig struct {
	ConfConst float64
	BatchSize int
	Pool      *workerpool.Pool
	RNG       *rng.RNG
}

// buildContribution is the BUILD arm's per-reference cost contribution:
// adding candidate cand decreases point r's best distance to
// min(d(cand, r), Delta1[r]); the contribution is that decrease, which
// is <= 0 and most negative for the most useful candidate. With an
// empty medoid set Delta1 is +Inf everywhere, so the contribution is
// simply d(cand, r).
func buildContribution(dist cache.Distancer, asn *Assignment, cand int) func(r int) float64 {
	return func(r int) float64 {
		d := dist.Distance(cand, r)
		delta1 := asn.Delta1[r]
		if math.IsInf(delta1, 1) {
			return d
		}
		return math.Min(d, delta1) - delta1
	}
}

// NaiveBuild grows the medoid set from empty to size k, at each step
// picking the candidate whose addition exactly minimizes total loss
// over all n points.
func NaiveBuild(ctx context.Context, n, k int, dist cache.Distancer) ([]int, *Assignment) {
	medoids := make([]int, 0, k)
	asn := Recompute(n, medoids, dist)

	for len(medoids) < k {
		if ctx.Err() != nil {
			break
		}
		candidates := candidatePoints(n, medoids)

		bestCand := -1
		bestTotal := math.Inf(1)
		for _, cand := range candidates {
			contribution := buildContribution(dist, asn, cand)
			total := 0.0
			for r := 0; r < n; r++ {
				total += contribution(r)
			}
			if total < bestTotal {
				bestTotal = total
				bestCand = cand
			}
		}

		medoids = append(medoids, bestCand)
		asn = Recompute(n, medoids, dist)
	}
	return medoids, asn
}

// BuildStep is one bandit BUILD insertion's diagnostics, suitable for
// per-iteration logging.
type BuildStep struct {
	Inserted int
	Loss     float64
	Round    ucb.Result
}

// BanditBuild grows the medoid set the same way NaiveBuild does, but
// picks each step's winning candidate via a UCB elimination round
// instead of scoring every candidate against every reference point.
func BanditBuild(ctx context.Context, n, k int, dist cache.Distancer, cfg BanditConfig) ([]int, *Assignment, []BuildStep) {
	medoids := make([]int, 0, k)
	asn := Recompute(n, medoids, dist)
	steps := make([]BuildStep, 0, k)

	for len(medoids) < k {
		if ctx.Err() != nil {
			break
		}
		candidates := candidatePoints(n, medoids)

		round := &ucb.Round{
			NumArms: len(candidates),
			N:       n,
			Contribution: func(a, r int) float64 {
				return buildContribution(dist, asn, candidates[a])(r)
			},
			ConfConst: cfg.ConfConst,
			BatchSize: cfg.BatchSize,
			Pool:      cfg.Pool,
			RNG:       cfg.RNG,
		}
		result := round.Run()

		medoids = append(medoids, candidates[result.Winner])
		asn = Recompute(n, medoids, dist)
		steps = append(steps, BuildStep{
			Inserted: candidates[result.Winner],
			Loss:     asn.Loss(),
			Round:    result,
		})
	}
	return medoids, asn, steps
}
