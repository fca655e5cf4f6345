package deleter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnstream/incdbscan/deleter"
	"github.com/nnstream/incdbscan/insert"
	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/metric"
	"github.com/nnstream/incdbscan/point"
	"github.com/nnstream/incdbscan/radiusindex"
)

func newEngine(t *testing.T, eps float64, minPts int) (*insert.Inserter, *deleter.Deleter, *point.Store, *label.Store) {
	t.Helper()
	m, err := metric.New(metric.Options{Kind: metric.Euclidean})
	require.NoError(t, err)
	labels := label.NewStore()
	points := point.NewStore(radiusindex.New(eps, m), labels)

	return insert.New(minPts, points, labels), deleter.New(minPts, points, labels), points, labels
}

func labelOf(t *testing.T, labels *label.Store, id string) label.Label {
	t.Helper()
	l, err := labels.Get(id)
	require.NoError(t, err)

	return l
}

// Deleting the core point an outer border point depends on turns that
// outer point back to noise once it no longer has any core neighbor.
func TestDeleter_DeletingOuterPointBecomesNoise(t *testing.T) {
	ins, del, points, labels := newEngine(t, 1.0, 3)

	var ids []string
	for _, c := range [][]float64{{0, 0}, {0.1, 0}, {0.2, 0}, {-0.95, 0}} {
		p, err := ins.Insert(c)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	clusterLabel := labelOf(t, labels, ids[0])
	assert.Equal(t, clusterLabel, labelOf(t, labels, ids[3]))

	p, ok := points.Get(ids[0])
	require.True(t, ok)
	require.NoError(t, del.Delete(p))

	assert.Equal(t, label.Noise, labelOf(t, labels, ids[3]))
}

// Deleting one occurrence of a duplicated point only decrements its count
// and leaves the clustering untouched.
func TestDeleter_DeletingDuplicateLeavesClusterIntact(t *testing.T) {
	ins, del, points, labels := newEngine(t, 1.0, 3)

	var ids []string
	for _, c := range [][]float64{{0, 0}, {0.1, 0}, {0.2, 0}} {
		p, err := ins.Insert(c)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	_, err := ins.Insert([]float64{0, 0})
	require.NoError(t, err)

	clusterLabel := labelOf(t, labels, ids[0])

	p, ok := points.Get(ids[0])
	require.True(t, ok)
	require.NoError(t, del.Delete(p))

	still, ok := points.Get(ids[0])
	require.True(t, ok)
	assert.Equal(t, 1, still.Count)
	assert.Equal(t, clusterLabel, labelOf(t, labels, ids[0]))
}

// A chain bridging two dense groups, once removed in its middle, splits
// the cluster in two: one piece keeps the old label, the other gets a
// fresh one.
func TestDeleter_DeletingBridgeSplitsCluster(t *testing.T) {
	ins, del, points, labels := newEngine(t, 1.0, 3)

	var allIDs []string
	for _, c := range [][]float64{
		{0, 0}, {0.1, 0}, {0.2, 0}, // group A
		{1, 0}, {2, 0}, // bridge
		{3, 0}, {3.1, 0}, {3.2, 0}, // group B
	} {
		p, err := ins.Insert(c)
		require.NoError(t, err)
		allIDs = append(allIDs, p.ID)
	}

	oneLabel := labelOf(t, labels, allIDs[0])
	assert.Equal(t, oneLabel, labelOf(t, labels, allIDs[len(allIDs)-1]))

	bridgeMid, ok := points.Get(allIDs[4]) // the {2,0} point
	require.True(t, ok)
	require.NoError(t, del.Delete(bridgeMid))

	labelA := labelOf(t, labels, allIDs[0])
	labelB := labelOf(t, labels, allIDs[len(allIDs)-1])
	assert.NotEqual(t, labelA, labelB)
}

func TestDeleter_DeleteUnknownPointErrors(t *testing.T) {
	_, del, _, _ := newEngine(t, 1.0, 3)
	err := del.Delete(&point.Point{ID: "missing"})
	assert.ErrorIs(t, err, point.ErrUnknownPoint)
}
