// Package pam implements the medoid-assignment bookkeeping and the
// BUILD/SWAP phases that grow and then refine a medoid set, in both the
// exact O(kn^2) naive form and the bandit-accelerated form built on the
// ucb package's elimination loop.
package pam

import (
	"math"

	"github.com/banditpam/banditpam/cache"
)

// tolerance absorbs floating-point noise when comparing candidate
// improvements against zero; the same slack the naive and bandit SWAP
// loops use to decide "no improving swap remains".
const tolerance = 1e-3

// Assignment is the nearest/second-nearest-medoid bookkeeping for a
// fixed medoid set: for every point i, Delta1[i] is its distance to its
// assigned medoid, Delta2[i] is its distance to the next-best medoid,
// and A[i] is the position within Medoids it is assigned to.
type Assignment struct {
	Medoids []int
	Delta1  []float64
	Delta2  []float64
	A       []int
}

// Recompute builds an Assignment from scratch by comparing every point
// against every medoid. With an empty medoid set, Delta1 and Delta2 are
// +Inf and A is -1 everywhere.
func Recompute(n int, medoids []int, dist cache.Distancer) *Assignment {
	asn := &Assignment{
		Medoids: append([]int(nil), medoids...),
		Delta1:  make([]float64, n),
		Delta2:  make([]float64, n),
		A:       make([]int, n),
	}
	for i := 0; i < n; i++ {
		best, second := math.Inf(1), math.Inf(1)
		bestPos := -1
		for p, m := range medoids {
			d := dist.Distance(i, m)
			switch {
			case d < best:
				second = best
				best = d
				bestPos = p
			case d < second:
				second = d
			}
		}
		asn.Delta1[i] = best
		asn.Delta2[i] = second
		asn.A[i] = bestPos
	}
	return asn
}

// Loss returns the total assignment cost, Σ Delta1[i].
func (a *Assignment) Loss() float64 {
	sum := 0.0
	for _, d := range a.Delta1 {
		sum += d
	}
	return sum
}

// candidatePoints returns every index in [0, n) not already a medoid,
// in ascending order. Both BUILD and SWAP only ever consider non-medoid
// points as arms.
func candidatePoints(n int, medoids []int) []int {
	excluded := make(map[int]bool, len(medoids))
	for _, m := range medoids {
		excluded[m] = true
	}
	out := make([]int, 0, n-len(medoids))
	for i := 0; i < n; i++ {
		if !excluded[i] {
			out = append(out, i)
		}
	}
	return out
}
