package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/metric"
	"github.com/nnstream/incdbscan/point"
	"github.com/nnstream/incdbscan/radiusindex"
)

func newStore(t *testing.T, eps float64) (*point.Store, *label.Store) {
	t.Helper()
	m, err := metric.New(metric.Options{Kind: metric.Euclidean})
	require.NoError(t, err)
	labels := label.NewStore()

	return point.NewStore(radiusindex.New(eps, m), labels), labels
}

func TestStore_InsertFreshPointIsSelfDense(t *testing.T) {
	s, labels := newStore(t, 1.0)

	p, err := s.Insert([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Count)
	assert.Equal(t, 1, p.NeighborCount)

	lbl, err := labels.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, label.Unclassified, lbl)
}

func TestStore_InsertDuplicateBumpsCountAndNeighborCount(t *testing.T) {
	s, _ := newStore(t, 1.0)

	p1, err := s.Insert([]float64{1, 1})
	require.NoError(t, err)
	p2, err := s.Insert([]float64{1, 1})
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 2, p1.Count)
	assert.Equal(t, 2, p1.NeighborCount)
}

func TestStore_InsertWiresMutualNeighborCounts(t *testing.T) {
	s, _ := newStore(t, 1.5)

	a, err := s.Insert([]float64{0, 0})
	require.NoError(t, err)
	b, err := s.Insert([]float64{1, 0})
	require.NoError(t, err)

	assert.Equal(t, 2, a.NeighborCount)
	assert.Equal(t, 2, b.NeighborCount)

	nbrs, err := s.Neighbors(a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, nbrs)
}

func TestStore_InsertDoesNotCountFarPoints(t *testing.T) {
	s, _ := newStore(t, 0.5)

	a, err := s.Insert([]float64{0, 0})
	require.NoError(t, err)
	_, err = s.Insert([]float64{10, 10})
	require.NoError(t, err)

	assert.Equal(t, 1, a.NeighborCount)
}

func TestStore_DeleteDecrementsNeighborsThenTearsDownAtZero(t *testing.T) {
	s, labels := newStore(t, 1.5)

	a, err := s.Insert([]float64{0, 0})
	require.NoError(t, err)
	b, err := s.Insert([]float64{1, 0})
	require.NoError(t, err)

	require.NoError(t, s.Delete(b))

	assert.Equal(t, 1, a.NeighborCount)
	_, ok := s.Get(b.ID)
	assert.False(t, ok)

	_, err = labels.Get(b.ID)
	assert.Error(t, err)
}

func TestStore_DeleteOfDuplicateOnlyDecrementsCount(t *testing.T) {
	s, _ := newStore(t, 1.0)

	p1, err := s.Insert([]float64{2, 2})
	require.NoError(t, err)
	_, err = s.Insert([]float64{2, 2})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p1))

	still, ok := s.Get(p1.ID)
	require.True(t, ok)
	assert.Equal(t, 1, still.Count)
	assert.Equal(t, 1, still.NeighborCount)
}

func TestStore_DeleteUnknownPointErrors(t *testing.T) {
	s, _ := newStore(t, 1.0)
	err := s.Delete(&point.Point{ID: "missing"})
	assert.ErrorIs(t, err, point.ErrUnknownPoint)
}

func TestStore_DeleteNilErrors(t *testing.T) {
	s, _ := newStore(t, 1.0)
	assert.ErrorIs(t, s.Delete(nil), point.ErrUnknownPoint)
}

func TestStore_ConnectedComponentsDelegatesToGraph(t *testing.T) {
	s, _ := newStore(t, 1.5)

	a, err := s.Insert([]float64{0, 0})
	require.NoError(t, err)
	b, err := s.Insert([]float64{1, 0})
	require.NoError(t, err)
	c, err := s.Insert([]float64{50, 50})
	require.NoError(t, err)

	comps := s.ConnectedComponents([]string{a.ID, b.ID, c.ID})
	assert.Len(t, comps, 2)
}
