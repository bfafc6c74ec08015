package loss_test

import (
	"testing"

	"github.com/banditpam/banditpam/dataset"
	"github.com/banditpam/banditpam/loss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownLosses(t *testing.T) {
	for _, name := range []string{"manhattan", "cos", "inf", "L2", "2", "L3"} {
		fn, err := loss.Resolve(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}
}

func TestResolve_UnknownLoss(t *testing.T) {
	_, err := loss.Resolve("L2.5")
	require.Error(t, err)

	var unknown *loss.ErrUnknownLoss
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "L2.5", unknown.Name)
}

func TestManhattanSymmetry(t *testing.T) {
	ds := dataset.New([][]float64{
		{0, 3, 1},
		{0, 4, 1},
	})
	fn, err := loss.Resolve("manhattan")
	require.NoError(t, err)

	assert.Equal(t, fn(ds, 0, 1), fn(ds, 1, 0))
	assert.Equal(t, 7.0, fn(ds, 0, 1))
	assert.Equal(t, 0.0, fn(ds, 0, 0))
}

func TestLinf(t *testing.T) {
	ds := dataset.New([][]float64{
		{0, 3},
		{0, 1},
	})
	fn, err := loss.Resolve("inf")
	require.NoError(t, err)
	assert.Equal(t, 3.0, fn(ds, 0, 1))
}

func TestLpMatchesEuclideanAtP2(t *testing.T) {
	ds := dataset.New([][]float64{
		{0, 3},
		{0, 4},
	})
	l2, err := loss.Resolve("L2")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, l2(ds, 0, 1), 1e-12)
}

func TestCosine_OrthogonalAndIdentical(t *testing.T) {
	ds := dataset.New([][]float64{
		{1, 0, 1},
		{0, 1, 1},
	})
	fn, err := loss.Resolve("cos")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, fn(ds, 0, 1), 1e-12) // orthogonal
	assert.InDelta(t, 0.0, fn(ds, 2, 2), 1e-12) // identical (itself)
}

func TestCosine_ZeroNormFallback(t *testing.T) {
	ds := dataset.New([][]float64{
		{0, 1},
		{0, 1},
	})
	fn, err := loss.Resolve("cos")
	require.NoError(t, err)
	assert.Equal(t, 1.0, fn(ds, 0, 1))
}
