// Package loss resolves a loss name into a dissimilarity function over
// dataset columns. The resolver mirrors the Provider(metric) pattern
// vecgo's distance package uses to turn a distance.Metric into a
// distance.Func, generalized from vecgo's fixed set of float32 SIMD
// kernels to a parameterized L_p family over float64 matrix columns.
package loss

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/banditpam/banditpam/dataset"
)

// Func computes the dissimilarity between points i and j of ds. Every loss
// in this registry is symmetric and non-negative.
type Func func(ds *dataset.Dataset, i, j int) float64

// ErrUnknownLoss is returned by Resolve for any unrecognized name. The
// estimator façade maps this to its own ErrInvalidLoss (see errors.go).
type ErrUnknownLoss struct {
	Name string
}

func (e *ErrUnknownLoss) Error() string {
	return fmt.Sprintf("unknown loss %q", e.Name)
}

// Resolve maps a loss name to its Func, once per fit. Accepted names:
// "manhattan", "cos", "inf" (Chebyshev/L-infinity), "L<p>" or bare "<p>"
// where p is a positive integer (e.g. "L2", "2", "L3").
func Resolve(name string) (Func, error) {
	switch name {
	case "manhattan":
		return manhattan, nil
	case "cos":
		return cosine, nil
	case "inf", "Linf":
		return linf, nil
	}

	p, err := parseP(name)
	if err != nil {
		return nil, &ErrUnknownLoss{Name: name}
	}
	return lp(p), nil
}

// parseP extracts the positive integer exponent from an "L<p>" or bare
// "<p>" loss name. A non-integer suffix (e.g. "L2.5") is rejected.
func parseP(name string) (int, error) {
	s := strings.TrimPrefix(name, "L")
	if s == "" {
		return 0, fmt.Errorf("empty exponent")
	}
	p, err := strconv.Atoi(s)
	if err != nil || p <= 0 {
		return 0, fmt.Errorf("not a positive integer exponent: %q", s)
	}
	return p, nil
}

func manhattan(ds *dataset.Dataset, i, j int) float64 {
	sum := 0.0
	for f := 0; f < ds.D(); f++ {
		sum += math.Abs(ds.At(f, i) - ds.At(f, j))
	}
	return sum
}

func linf(ds *dataset.Dataset, i, j int) float64 {
	max := 0.0
	for f := 0; f < ds.D(); f++ {
		if v := math.Abs(ds.At(f, i) - ds.At(f, j)); v > max {
			max = v
		}
	}
	return max
}

// lp builds the L_p loss for a fixed positive-integer exponent p.
func lp(p int) Func {
	exp := float64(p)
	inv := 1 / exp
	return func(ds *dataset.Dataset, i, j int) float64 {
		sum := 0.0
		for f := 0; f < ds.D(); f++ {
			sum += math.Pow(math.Abs(ds.At(f, i)-ds.At(f, j)), exp)
		}
		return math.Pow(sum, inv)
	}
}

// cosine is 1 minus the cosine similarity. A zero-norm column falls back to
// a dissimilarity of 1 rather than dividing by zero.
func cosine(ds *dataset.Dataset, i, j int) float64 {
	var dot, normI, normJ float64
	for f := 0; f < ds.D(); f++ {
		a, b := ds.At(f, i), ds.At(f, j)
		dot += a * b
		normI += a * a
		normJ += b * b
	}
	if normI == 0 || normJ == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normI)*math.Sqrt(normJ))
}
