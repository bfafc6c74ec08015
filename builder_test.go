package banditpam_test

import (
	"path/filepath"
	"testing"

	"github.com/banditpam/banditpam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_RejectsNonPositiveK(t *testing.T) {
	_, err := banditpam.New(0).Build()
	require.Error(t, err)

	var shapeErr *banditpam.InvalidShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestBuilder_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := banditpam.New(2, banditpam.WithAlgorithm("kmeans++")).Build()
	require.Error(t, err)

	var algoErr *banditpam.InvalidAlgorithmError
	require.ErrorAs(t, err, &algoErr)
	assert.Equal(t, "kmeans++", algoErr.Name)
}

func TestBuilder_DefaultsBuildSuccessfully(t *testing.T) {
	est, err := banditpam.New(3).Build()
	require.NoError(t, err)
	require.NotNil(t, est)
	assert.NoError(t, est.Close())
}

func TestBuilder_LogPathOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.log")
	est, err := banditpam.New(2, banditpam.WithVerbosity(1), banditpam.WithLogPath(path)).Build()
	require.NoError(t, err)
	require.NoError(t, est.Close())
}
