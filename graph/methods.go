package graph

import "sort"

// AddVertex inserts an isolated vertex with the given id.
// Returns ErrEmptyVertexID if id is empty. A no-op if id already present.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; ok {
		return nil // idempotent, mirrors lvlath's AddVertex convention
	}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether id is currently present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes id and every edge incident to it.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nbr := range neighbors {
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)

	return nil
}

// AddEdge connects a and b. Both vertices must already exist.
// Returns ErrLoopNotAllowed if a==b.
// A no-op if the edge is already present (the deleter's component walker
// relies on this being safe to call unconditionally).
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) error {
	if a == b {
		return ErrLoopNotAllowed
	}
	na, ok := g.adjacency[a]
	if !ok {
		return ErrVertexNotFound
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return ErrVertexNotFound
	}
	na[b] = struct{}{}
	nb[a] = struct{}{}

	return nil
}

// HasEdge reports whether a and b are directly connected.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	na, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = na[b]

	return ok
}

// NeighborIDs returns the sorted, unique IDs adjacent to id.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(neighbors))
	for nbr := range neighbors {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns deg(id), the number of distinct neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}
