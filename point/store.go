package point

import (
	"github.com/nnstream/incdbscan/graph"
	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/radiusindex"
)

// Store owns every live Point, the ε-neighbor Graph, the RadiusIndex, and
// (for the one label assignment that belongs to admission, not
// classification) the LabelStore.
type Store struct {
	points map[string]*Point
	graph  *graph.Graph
	index  *radiusindex.Index
	labels *label.Store
}

// NewStore returns an empty Store backed by the given RadiusIndex and
// LabelStore. The Store does not own constructing those — the engine wires
// them so it can also hand the same LabelStore to the Inserter and Deleter.
// Complexity: O(1).
func NewStore(index *radiusindex.Index, labels *label.Store) *Store {
	return &Store{
		points: make(map[string]*Point),
		graph:  graph.NewGraph(),
		index:  index,
		labels: labels,
	}
}

// Graph returns the neighbor graph, for Inserter/Deleter queries that need
// induced-subgraph connected components or raw adjacency.
func (s *Store) Graph() *graph.Graph { return s.graph }

// Locate returns the live Point for value, if any.
// Complexity: O(1).
func (s *Store) Locate(value []float64) (*Point, bool) {
	p, ok := s.points[ContentHash(value)]

	return p, ok
}

// Get returns the live Point with the given id, if any.
// Complexity: O(1).
func (s *Store) Get(id string) (*Point, bool) {
	p, ok := s.points[id]

	return p, ok
}

// Neighbors returns the ids of every ε-close distinct point of id, plus id
// itself — the point's full neighbor set per the data model (§3: "the set
// of ε-close distinct points (always contains self)").
// Complexity: O(deg(id) log deg(id)).
func (s *Store) Neighbors(id string) ([]string, error) {
	nbrs, err := s.graph.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	return append(nbrs, id), nil
}

// Insert admits value: if a Point for this value already exists, its count
// and every neighbor's (including its own) NeighborCount are bumped by one
// and it is returned unchanged in identity. Otherwise a new Point is
// created, wired into the RadiusIndex and Graph, labeled Unclassified, and
// its density — and that of every newly-adjacent point — is updated to
// reflect the insertion.
// Complexity: O(index.Query cost + deg(new)).
func (s *Store) Insert(value []float64) (*Point, error) {
	id := ContentHash(value)

	if existing, ok := s.points[id]; ok {
		existing.Count++
		nbrs, err := s.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, nid := range nbrs {
			s.points[nid].NeighborCount++
		}

		return existing, nil
	}

	p := &Point{ID: id, Value: value, Count: 1, NeighborCount: 1} // self-contribution
	s.points[id] = p

	if err := s.graph.AddVertex(id); err != nil {
		return nil, err
	}
	if err := s.index.Insert(value, id); err != nil {
		return nil, err
	}
	s.labels.AssignUnclassified(id)

	candidates, err := s.index.Query(value)
	if err != nil {
		return nil, err
	}
	for _, qid := range candidates {
		if qid == id {
			continue
		}
		q := s.points[qid]
		q.NeighborCount++
		p.NeighborCount += q.Count
		if err := s.graph.AddEdge(id, qid); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Delete retracts one occurrence of p. Every neighbor's (including p's
// own) NeighborCount drops by one; once p.Count reaches zero, p is torn
// down entirely — removed from the Graph, the RadiusIndex, and the
// LabelStore.
// Returns ErrUnknownPoint if p is nil or already gone from the store.
// Complexity: O(deg(p)).
func (s *Store) Delete(p *Point) error {
	if p == nil {
		return ErrUnknownPoint
	}
	if _, ok := s.points[p.ID]; !ok {
		return ErrUnknownPoint
	}

	nbrs, err := s.Neighbors(p.ID)
	if err != nil {
		return err
	}
	for _, nid := range nbrs {
		s.points[nid].NeighborCount--
	}

	p.Count--
	if p.Count > 0 {
		return nil
	}

	if err := s.graph.RemoveVertex(p.ID); err != nil {
		return err
	}
	if err := s.index.Remove(p.ID); err != nil {
		return err
	}
	s.labels.Forget(p.ID)
	delete(s.points, p.ID)

	return nil
}

// ConnectedComponents partitions ids into the maximal mutually-connected
// subsets of the subgraph the Graph induces on ids alone.
// Complexity: see graph.Graph.ConnectedComponents.
func (s *Store) ConnectedComponents(ids []string) [][]string {
	return s.graph.ConnectedComponents(ids)
}
