package ucb

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary reports the distribution of per-arm dispersion estimates
// (sigma) gathered at the start of a Round, for diagnostic logging.
type Summary struct {
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
	Mean   float64
}

// summarize computes Summary over a copy of values, using gonum/stat for
// the mean and quantiles rather than hand-rolling percentile arithmetic.
func summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
	}
}
