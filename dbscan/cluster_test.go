package dbscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnstream/incdbscan/dbscan"
	"github.com/nnstream/incdbscan/metric"
)

func TestCluster_SingleFarPointIsNoise(t *testing.T) {
	labels, err := dbscan.Cluster([][]float64{{10, 10}}, 1.5, 4, metric.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{dbscan.Noise}, labels)
}

func TestCluster_CollinearTripleFormsOneCluster(t *testing.T) {
	values := [][]float64{{1.5, 0}, {3.0, 0}, {4.5, 0}}
	labels, err := dbscan.Cluster(values, 1.5, 3, metric.Options{})
	require.NoError(t, err)

	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[1], labels[2])
	assert.NotEqual(t, dbscan.Noise, labels[0])
}

func TestCluster_TwoFarGroupsGetDistinctLabels(t *testing.T) {
	values := [][]float64{
		{0, 0}, {0.1, 0}, {0.2, 0},
		{10, 0}, {10.1, 0}, {10.2, 0},
	}
	labels, err := dbscan.Cluster(values, 1.0, 3, metric.Options{})
	require.NoError(t, err)

	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[1], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[4], labels[5])
	assert.NotEqual(t, labels[0], labels[3])
}

func TestCluster_RejectsInvalidParameters(t *testing.T) {
	_, err := dbscan.Cluster([][]float64{{0, 0}}, 0, 3, metric.Options{})
	assert.ErrorIs(t, err, dbscan.ErrNonPositiveEps)

	_, err = dbscan.Cluster([][]float64{{0, 0}}, 1, 0, metric.Options{})
	assert.ErrorIs(t, err, dbscan.ErrNonPositiveMinPts)

	_, err = dbscan.Cluster(nil, 1, 3, metric.Options{})
	assert.ErrorIs(t, err, dbscan.ErrEmptyInput)
}
