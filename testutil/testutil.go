// Package testutil builds the small synthetic datasets exercised across
// this module's tests: Gaussian blobs, collinear points, and degenerate
// single-point cases, keeping fixture construction out of individual
// test files the way vecgo's own testutil package does.
package testutil

import (
	"math"
	"math/rand"

	"github.com/banditpam/banditpam/dataset"
)

// TwoGaussianBlobs returns a 2D dataset with two clusters of perCluster
// points each, centered at (cx1,cy1) and (cx2,cy2) with the given standard
// deviation, generated from a seeded source for reproducibility.
func TwoGaussianBlobs(seed int64, perCluster int, cx1, cy1, cx2, cy2, sigma float64) *dataset.Dataset {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec

	xs := make([]float64, 0, perCluster*2)
	ys := make([]float64, 0, perCluster*2)
	for i := 0; i < perCluster; i++ {
		xs = append(xs, cx1+r.NormFloat64()*sigma)
		ys = append(ys, cy1+r.NormFloat64()*sigma)
	}
	for i := 0; i < perCluster; i++ {
		xs = append(xs, cx2+r.NormFloat64()*sigma)
		ys = append(ys, cy2+r.NormFloat64()*sigma)
	}
	return dataset.New([][]float64{xs, ys})
}

// Collinear returns a 1D dataset of n points at x = 0, 1, ..., n-1.
func Collinear(n int) *dataset.Dataset {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return dataset.New([][]float64{xs})
}

// SingleColumn returns a dataset holding a single point whose feature
// values are features (n=1, d=len(features)).
func SingleColumn(features []float64) *dataset.Dataset {
	raw := make([][]float64, len(features))
	for f, v := range features {
		raw[f] = []float64{v}
	}
	return dataset.New(raw)
}

// DuplicatesPlusOutlier returns a 1D dataset with two coincident points
// at 0 and one point at distance dist from them.
func DuplicatesPlusOutlier(dist float64) *dataset.Dataset {
	return dataset.New([][]float64{{0, 0, dist}})
}

// OrthogonalUnitVectors returns two orthogonal 2D unit vectors, useful
// for exercising the cosine loss's d=1 case.
func OrthogonalUnitVectors() *dataset.Dataset {
	return dataset.New([][]float64{{1, 0}, {0, 1}})
}

// ZeroNormColumn returns a dataset whose first column is the zero
// vector, exercising the cosine loss's fallback path.
func ZeroNormColumn() *dataset.Dataset {
	return dataset.New([][]float64{{0, 1}, {0, 1}})
}

// EuclideanDistance is a convenience helper for tests asserting against
// raw coordinates without going through the loss registry.
func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}
