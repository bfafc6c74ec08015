// Package dataset holds the dataset matrix the estimator clusters.
//
// The matrix is interpreted column-major: column i is point i, so a
// Dataset with d features and n points is a d-by-n matrix. Wrapping
// gonum's *mat.Dense (rather than a bare [][]float64) links the estimator
// against a numerical library for matrix storage, the same posture
// matrixorigin-matrixone's elkans k-means clusterer takes with
// *mat.VecDense columns.
package dataset

import "gonum.org/v1/gonum/mat"

// Dataset is an immutable view over a d-by-n real matrix: d features (rows),
// n points (columns).
type Dataset struct {
	m *mat.Dense
	d int
	n int
}

// New wraps raw as a Dataset. raw is row-major [feature][point], matching
// how callers typically assemble data (one slice per feature, or one row
// per loaded record transposed by the caller). len(raw) is d; len(raw[0])
// is n. All rows must have equal length.
func New(raw [][]float64) *Dataset {
	d := len(raw)
	if d == 0 {
		// gonum's NewDense rejects zero dimensions, so an empty Dataset
		// carries no backing matrix.
		return &Dataset{d: 0, n: 0}
	}
	n := len(raw[0])

	m := mat.NewDense(d, n, nil)
	for f := 0; f < d; f++ {
		for i := 0; i < n; i++ {
			m.Set(f, i, raw[f][i])
		}
	}
	return &Dataset{m: m, d: d, n: n}
}

// NewFromDense wraps an existing *mat.Dense directly. dense.Dims() must be
// (d, n): rows are features, columns are points.
func NewFromDense(dense *mat.Dense) *Dataset {
	d, n := dense.Dims()
	return &Dataset{m: dense, d: d, n: n}
}

// N returns the number of points (columns).
func (ds *Dataset) N() int { return ds.n }

// D returns the number of features (rows).
func (ds *Dataset) D() int { return ds.d }

// At returns the value of feature f for point i.
func (ds *Dataset) At(f, i int) float64 { return ds.m.At(f, i) }

// Column returns a read-only view of point i across all features.
func (ds *Dataset) Column(i int) mat.Vector {
	return ds.m.ColView(i)
}

// CopyColumn writes point i's features into dst, which must have length D().
func (ds *Dataset) CopyColumn(i int, dst []float64) {
	mat.Col(dst, i, ds.m)
}
