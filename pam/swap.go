package pam

import (
	"context"
	"math"

	"github.com/banditpam/banditpam/cache"
	"github.com/banditpam/banditpam/ucb"
)

// swapNewDist is the post-swap distance point r would see if medoid
// position p were replaced by candidate cand: if r is currently
// assigned to p, its fallback is Delta2 (the medoid being removed is no
// longer available); otherwise its fallback is its current Delta1.
func swapNewDist(dist cache.Distancer, asn *Assignment, p, cand, r int) float64 {
	d := dist.Distance(cand, r)
	if asn.A[r] == p {
		return math.Min(d, asn.Delta2[r])
	}
	return math.Min(d, asn.Delta1[r])
}

// NaiveSwap iterates exact SWAP steps: for every (medoid position,
// candidate) pair, compute the exact total loss the swap would produce,
// and apply whichever single swap yields the largest strict decrease.
// Stops at a fixed point (no improving swap) or after maxIter steps,
// reporting whether it was the latter.
func NaiveSwap(ctx context.Context, n, k int, medoids []int, dist cache.Distancer, maxIter int) ([]int, *Assignment, int, bool) {
	medoids = append([]int(nil), medoids...)
	asn := Recompute(n, medoids, dist)

	steps := 0
	for steps < maxIter {
		if ctx.Err() != nil {
			break
		}
		candidates := candidatePoints(n, medoids)
		currentLoss := asn.Loss()

		bestP, bestCand := -1, -1
		bestImprovement := tolerance

		for p := 0; p < k; p++ {
			for _, cand := range candidates {
				total := 0.0
				for r := 0; r < n; r++ {
					total += swapNewDist(dist, asn, p, cand, r)
				}
				improvement := currentLoss - total
				if improvement > bestImprovement {
					bestImprovement = improvement
					bestP, bestCand = p, cand
				}
			}
		}

		if bestP < 0 {
			return medoids, asn, steps, false
		}

		medoids[bestP] = bestCand
		asn = Recompute(n, medoids, dist)
		steps++
	}
	return medoids, asn, steps, steps >= maxIter
}

// SwapStep is one bandit SWAP iteration's diagnostics.
type SwapStep struct {
	Position  int
	Candidate int
	Loss      float64
	Round     ucb.Result
}

// BanditSwap performs the same fixed-point iteration as NaiveSwap, but
// each iteration picks its (position, candidate) pair via a single UCB
// elimination round over all k*len(candidates) arms instead of scoring
// every pair against every reference point.
func BanditSwap(ctx context.Context, n, k int, medoids []int, dist cache.Distancer, cfg BanditConfig, maxIter int) ([]int, *Assignment, int, bool, []SwapStep) {
	medoids = append([]int(nil), medoids...)
	asn := Recompute(n, medoids, dist)
	history := make([]SwapStep, 0, maxIter)

	steps := 0
	for steps < maxIter {
		if ctx.Err() != nil {
			break
		}
		candidates := candidatePoints(n, medoids)
		numCand := len(candidates)
		if numCand == 0 {
			break
		}

		round := &ucb.Round{
			NumArms: k * numCand,
			N:       n,
			Contribution: func(a, r int) float64 {
				p := a / numCand
				cand := candidates[a%numCand]
				return swapNewDist(dist, asn, p, cand, r) - asn.Delta1[r]
			},
			ConfConst: cfg.ConfConst,
			BatchSize: cfg.BatchSize,
			Pool:      cfg.Pool,
			RNG:       cfg.RNG,
		}
		result := round.Run()

		winnerMean := result.Stats[result.Winner].Mean
		if winnerMean >= -tolerance {
			return medoids, asn, steps, false, history
		}

		p := result.Winner / numCand
		cand := candidates[result.Winner%numCand]
		medoids[p] = cand
		asn = Recompute(n, medoids, dist)
		steps++
		history = append(history, SwapStep{
			Position:  p,
			Candidate: cand,
			Loss:      asn.Loss(),
			Round:     result,
		})
	}
	return medoids, asn, steps, steps >= maxIter, history
}
