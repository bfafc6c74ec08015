package banditpam_test

import (
	"context"
	"testing"

	"github.com/banditpam/banditpam"
	"github.com/banditpam/banditpam/dataset"
	"github.com/banditpam/banditpam/snapshot"
	"github.com/banditpam/banditpam/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_TwoGaussianBlobsSeparatesClusters(t *testing.T) {
	ds := testutil.TwoGaussianBlobs(0, 50, 0, 0, 10, 10, 0.1)

	est, err := banditpam.New(2, banditpam.WithSeed(0)).Build()
	require.NoError(t, err)
	defer est.Close()

	require.NoError(t, est.Fit(context.Background(), ds, "L2"))

	medoids := est.MFinal()
	require.Len(t, medoids, 2)

	hasLow, hasHigh := false, false
	for _, m := range medoids {
		if m < 50 {
			hasLow = true
		} else {
			hasHigh = true
		}
	}
	assert.True(t, hasLow, "expected one medoid near (0,0) cluster")
	assert.True(t, hasHigh, "expected one medoid near (10,10) cluster")
	assert.Len(t, est.Assignments(), 100)
}

func TestFit_SingleColumnDegenerateCase(t *testing.T) {
	ds := testutil.SingleColumn([]float64{1, 1, 1, 1})

	est, err := banditpam.New(1).Build()
	require.NoError(t, err)
	defer est.Close()

	require.NoError(t, est.Fit(context.Background(), ds, "manhattan"))
	assert.Equal(t, []int{0}, est.MFinal())
	assert.Equal(t, []int{0}, est.Assignments())
}

func TestFit_DuplicatesPlusOutlierSelectsBoth(t *testing.T) {
	ds := testutil.DuplicatesPlusOutlier(10)

	est, err := banditpam.New(2, banditpam.WithAlgorithm("naive")).Build()
	require.NoError(t, err)
	defer est.Close()

	require.NoError(t, est.Fit(context.Background(), ds, "L2"))
	medoids := est.MFinal()
	assert.Contains(t, medoids, 2)
}

func TestFit_CollinearPointsNaiveMatchesKnownMedoids(t *testing.T) {
	ds := testutil.Collinear(10)

	est, err := banditpam.New(3, banditpam.WithAlgorithm("naive")).Build()
	require.NoError(t, err)
	defer est.Close()

	require.NoError(t, est.Fit(context.Background(), ds, "manhattan"))
	medoids := est.MFinal()
	require.Len(t, medoids, 3)

	want := map[int]bool{1: true, 4: true, 7: true}
	got := map[int]bool{}
	for _, m := range medoids {
		got[m] = true
	}
	assert.Equal(t, want, got)
}

func TestFit_UnknownLossReturnsInvalidLoss(t *testing.T) {
	ds := dataset.New([][]float64{{0, 1, 2}})
	est, err := banditpam.New(1).Build()
	require.NoError(t, err)
	defer est.Close()

	err = est.Fit(context.Background(), ds, "L2.5")
	require.Error(t, err)

	var lossErr *banditpam.InvalidLossError
	require.ErrorAs(t, err, &lossErr)
}

func TestFit_RejectsKGreaterThanN(t *testing.T) {
	ds := dataset.New([][]float64{{0, 1, 2}})
	est, err := banditpam.New(5).Build()
	require.NoError(t, err)
	defer est.Close()

	err = est.Fit(context.Background(), ds, "L2")
	require.Error(t, err)

	var shapeErr *banditpam.InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestExportSnapshot_RoundTripsThroughLocalStore(t *testing.T) {
	ds := testutil.Collinear(10)

	est, err := banditpam.New(3, banditpam.WithSeed(7), banditpam.WithAlgorithm("naive")).Build()
	require.NoError(t, err)
	defer est.Close()
	require.NoError(t, est.Fit(context.Background(), ds, "manhattan"))

	store, err := snapshot.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, est.ExportSnapshot(context.Background(), store, "fit-1"))

	data, err := store.Get(context.Background(), "fit-1")
	require.NoError(t, err)

	payload, err := snapshot.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 3, payload.K)
	assert.Equal(t, "manhattan", payload.Loss)
	assert.Equal(t, int64(7), payload.Seed)
	assert.Equal(t, est.MBuild(), payload.MBuild)
	assert.Equal(t, est.MFinal(), payload.MFinal)
	assert.Equal(t, est.Assignments(), payload.A)
	assert.Equal(t, est.Steps(), payload.Steps)
	assert.Equal(t, est.MaxIterReached(), payload.MaxIter)
}

func TestFit_IdempotentGivenSameSeed(t *testing.T) {
	ds := testutil.Collinear(10)

	run := func() []int {
		est, err := banditpam.New(3, banditpam.WithSeed(42)).Build()
		require.NoError(t, err)
		defer est.Close()
		require.NoError(t, est.Fit(context.Background(), ds, "manhattan"))
		return est.MFinal()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}
