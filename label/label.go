// Package label implements the bidirectional mapping between points and
// cluster labels described in the engine's data model: every live point
// carries exactly one label, and the store can walk either direction
// (point -> label, label -> its points) in O(1)/O(bucket size).
//
// Grounded directly on incdbscan's _labels.py LabelHandler: the same
// point-to-label map plus label-to-points buckets, the same monotonic
// "next label is max+1" allocation rule, and the same rename-erases-bucket
// contract.
package label

import "errors"

// Label identifies a cluster, or one of the two sentinels below.
type Label int

const (
	// Unclassified marks a point momentarily, between PointStore.Insert
	// returning it and the Inserter assigning its final label. It must
	// never be observed outside a single insert/delete call.
	Unclassified Label = -2

	// Noise marks a point that is neither core nor density-reachable from
	// a core point.
	Noise Label = -1

	// FirstCluster is the smallest label ever allocated to a real cluster.
	FirstCluster Label = 0
)

// ErrUnknownPoint indicates an operation referenced a point with no
// recorded label.
var ErrUnknownPoint = errors.New("label: point has no recorded label")

// Store is a bidirectional point<->label mapping.
type Store struct {
	pointToLabel map[string]Label
	labelToPoint map[Label]map[string]struct{}
}

// NewStore returns an empty Store.
// Complexity: O(1).
func NewStore() *Store {
	return &Store{
		pointToLabel: make(map[string]Label),
		labelToPoint: make(map[Label]map[string]struct{}),
	}
}

// AssignUnclassified registers a freshly created point with the
// Unclassified sentinel. id must not already be tracked.
// Complexity: O(1).
func (s *Store) AssignUnclassified(id string) {
	s.bucket(Unclassified)[id] = struct{}{}
	s.pointToLabel[id] = Unclassified
}

// Get returns the current label of id.
// Returns ErrUnknownPoint if id is not tracked.
// Complexity: O(1).
func (s *Store) Get(id string) (Label, error) {
	l, ok := s.pointToLabel[id]
	if !ok {
		return 0, ErrUnknownPoint
	}

	return l, nil
}

// Set moves id from its current label bucket into k.
// Returns ErrUnknownPoint if id is not tracked.
// Complexity: O(1).
func (s *Store) Set(id string, k Label) error {
	prev, ok := s.pointToLabel[id]
	if !ok {
		return ErrUnknownPoint
	}
	if prev == k {
		return nil
	}
	delete(s.bucket(prev), id)
	s.bucket(k)[id] = struct{}{}
	s.pointToLabel[id] = k

	return nil
}

// BulkSet applies Set(id, k) to every id in ids.
// Complexity: O(len(ids)).
func (s *Store) BulkSet(ids []string, k Label) error {
	for _, id := range ids {
		if err := s.Set(id, k); err != nil {
			return err
		}
	}

	return nil
}

// Rename reassigns every point currently carrying from to to, and removes
// the from bucket entirely — callers must not use from as a live cluster
// label afterward.
// A no-op if from == to or the from bucket is empty.
// Complexity: O(|points labeled from|).
func (s *Store) Rename(from, to Label) {
	if from == to {
		return
	}
	members, ok := s.labelToPoint[from]
	if !ok || len(members) == 0 {
		delete(s.labelToPoint, from)
		return
	}
	dst := s.bucket(to)
	for id := range members {
		dst[id] = struct{}{}
		s.pointToLabel[id] = to
	}
	delete(s.labelToPoint, from)
}

// Forget removes id from the store entirely. A no-op if id is untracked.
// Complexity: O(1).
func (s *Store) Forget(id string) {
	l, ok := s.pointToLabel[id]
	if !ok {
		return
	}
	delete(s.bucket(l), id)
	delete(s.pointToLabel, id)
}

// AllocateFresh returns one greater than the largest label that still has
// a bucket in this store (including Noise/Unclassified, so the result is
// always >= FirstCluster). A bucket emptied by Set or Forget keeps its key,
// so its label is not handed out again; Rename deletes the from bucket, so
// a renamed-away label can be returned again if it was larger than every
// label still present — callers must call this only when a genuinely new
// cluster identity is needed.
// Complexity: O(number of distinct labels ever seen).
func (s *Store) AllocateFresh() Label {
	max := FirstCluster - 1
	for k := range s.labelToPoint {
		if k > max {
			max = k
		}
	}

	return max + 1
}

// Members returns the ids currently carrying label k. The returned slice
// is a fresh copy, safe for the caller to retain.
// Complexity: O(|points labeled k|).
func (s *Store) Members(k Label) []string {
	bucket := s.labelToPoint[k]
	out := make([]string, 0, len(bucket))
	for id := range bucket {
		out = append(out, id)
	}

	return out
}

func (s *Store) bucket(k Label) map[string]struct{} {
	b, ok := s.labelToPoint[k]
	if !ok {
		b = make(map[string]struct{})
		s.labelToPoint[k] = b
	}

	return b
}
