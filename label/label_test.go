package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nnstream/incdbscan/label"
)

func TestStore_AssignAndGet(t *testing.T) {
	s := label.NewStore()
	s.AssignUnclassified("a")

	got, err := s.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, label.Unclassified, got)

	_, err = s.Get("ghost")
	assert.ErrorIs(t, err, label.ErrUnknownPoint)
}

func TestStore_SetMovesBetweenBuckets(t *testing.T) {
	s := label.NewStore()
	s.AssignUnclassified("a")

	assert.NoError(t, s.Set("a", label.Noise))
	got, _ := s.Get("a")
	assert.Equal(t, label.Noise, got)
	assert.Empty(t, s.Members(label.Unclassified))
	assert.Equal(t, []string{"a"}, s.Members(label.Noise))

	assert.ErrorIs(t, s.Set("ghost", label.Noise), label.ErrUnknownPoint)
}

func TestStore_AllocateFreshIsMonotonic(t *testing.T) {
	s := label.NewStore()
	assert.Equal(t, label.FirstCluster, s.AllocateFresh())

	s.AssignUnclassified("a")
	_ = s.Set("a", label.FirstCluster)
	assert.Equal(t, label.Label(1), s.AllocateFresh())

	s.AssignUnclassified("b")
	_ = s.Set("b", label.Label(1))
	assert.Equal(t, label.Label(2), s.AllocateFresh())
}

func TestStore_RenameMovesAndDeletesSourceBucket(t *testing.T) {
	s := label.NewStore()
	for _, id := range []string{"a", "b", "c"} {
		s.AssignUnclassified(id)
	}
	_ = s.Set("a", label.Label(0))
	_ = s.Set("b", label.Label(0))
	_ = s.Set("c", label.Label(1))

	s.Rename(label.Label(0), label.Label(1))

	assert.Empty(t, s.Members(label.Label(0)))
	members := s.Members(label.Label(1))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, members)

	// Renaming away label 0 must not let it resurface as a fresh label.
	assert.Equal(t, label.Label(2), s.AllocateFresh())
}

func TestStore_Forget(t *testing.T) {
	s := label.NewStore()
	s.AssignUnclassified("a")
	_ = s.Set("a", label.Noise)

	s.Forget("a")
	_, err := s.Get("a")
	assert.ErrorIs(t, err, label.ErrUnknownPoint)
	assert.Empty(t, s.Members(label.Noise))

	// Forgetting an untracked id is a no-op, not an error.
	s.Forget("a")
}

func TestStore_BulkSet(t *testing.T) {
	s := label.NewStore()
	for _, id := range []string{"a", "b"} {
		s.AssignUnclassified(id)
	}

	assert.NoError(t, s.BulkSet([]string{"a", "b"}, label.Label(3)))
	assert.ElementsMatch(t, []string{"a", "b"}, s.Members(label.Label(3)))
}
