package deleter

import (
	"github.com/nnstream/incdbscan/graph"
	"github.com/nnstream/incdbscan/point"
)

// seededItem pairs a vertex id with the id of the seed its exploration
// branch started from.
type seededItem struct {
	id     string
	seedID string
}

// componentWalker grows a scratch graph outward from a set of seeds,
// stopping the instant only one seed's branch is still unexplored. Mirrors
// lvlath's bfs walker shape: mutable state plus a queue-draining loop.
type componentWalker struct {
	points  *point.Store
	minPts  int
	scratch *graph.Graph
	visited map[string]bool
	queue   []seededItem
}

// splitAwayComponents finds which connected subsets of seeds' neighborhood
// no longer belong with the rest and must be relabeled. A nil/empty result
// means seeds stays together under its current label.
//
// seeds must all currently share one cluster label — the caller groups
// update seeds by label before calling this.
func splitAwayComponents(points *point.Store, minPts int, seeds []string) ([][]string, error) {
	if len(seeds) == 1 {
		return nil, nil
	}

	if allMutualNeighbors(points, seeds) {
		return nil, nil
	}

	w := &componentWalker{
		points:  points,
		minPts:  minPts,
		scratch: graph.NewGraph(),
		visited: make(map[string]bool, len(seeds)),
	}
	for _, s := range seeds {
		if err := w.scratch.AddVertex(s); err != nil {
			return nil, err
		}
		w.visited[s] = true
		w.queue = append(w.queue, seededItem{id: s, seedID: s})
	}

	if err := w.drain(); err != nil {
		return nil, err
	}

	if len(w.queue) == 0 {
		return nil, nil
	}
	remainingSeedID := w.queue[0].seedID

	var ids []string
	for id := range w.visited {
		ids = append(ids, id)
	}

	var toSplit [][]string
	for _, component := range w.scratch.ConnectedComponents(ids) {
		if containsID(component, remainingSeedID) {
			continue
		}
		toSplit = append(toSplit, component)
	}

	return toSplit, nil
}

// drain runs the walker until at most one distinct seed id remains among
// the items still queued for exploration.
func (w *componentWalker) drain() error {
	for distinctSeedCount(w.queue) > 1 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand adds obj's neighbors to the scratch graph, linking core neighbors
// (merging branches where they meet) and pruning non-core ones to leaves.
func (w *componentWalker) expand(item seededItem) error {
	nbrs, err := w.points.Neighbors(item.id)
	if err != nil {
		return err
	}

	for _, nid := range nbrs {
		if nid == item.id {
			continue
		}
		n, ok := w.points.Get(nid)
		if !ok {
			continue
		}
		isCore := n.IsCore(w.minPts)
		wasNew := !w.visited[nid]

		if isCore || wasNew {
			if wasNew {
				if err := w.scratch.AddVertex(nid); err != nil {
					return err
				}
				w.visited[nid] = true
			}
			if err := w.scratch.AddEdge(item.id, nid); err != nil {
				return err
			}
		}
		if isCore && wasNew {
			w.queue = append(w.queue, seededItem{id: nid, seedID: item.seedID})
		}
	}

	return nil
}

func distinctSeedCount(queue []seededItem) int {
	seen := make(map[string]struct{}, len(queue))
	for _, it := range queue {
		seen[it.seedID] = struct{}{}
	}

	return len(seen)
}

// allMutualNeighbors reports whether every pair in ids is directly connected
// in the live graph, short-circuiting the componentWalker entirely when
// seeds already form a clique (the common case for a small update-seed set).
func allMutualNeighbors(points *point.Store, ids []string) bool {
	g := points.Graph()
	for i, id := range ids {
		if g.Degree(id) < len(ids)-1 {
			return false
		}
		for _, other := range ids[i+1:] {
			if !g.HasEdge(id, other) {
				return false
			}
		}
	}

	return true
}

func containsID(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}

	return false
}
