package point

// Point is one distinct value currently present in the engine, identified
// by the content hash of its vector. Duplicate insertions of the same
// value share a Point and only bump Count.
type Point struct {
	// ID is the stable content-hash identifier of Value, and also this
	// point's vertex ID in the neighbor graph.
	ID string

	// Value is the coordinate vector this point represents.
	Value []float64

	// Count is the multiplicity: how many times Value is currently
	// present. Always >= 1 while the point is live.
	Count int

	// NeighborCount is Σ Count over every ε-close point including this
	// one — the DBSCAN density measure. A point is core iff
	// NeighborCount >= minPts.
	NeighborCount int
}

// IsCore reports whether p meets the density threshold minPts.
// Complexity: O(1).
func (p *Point) IsCore(minPts int) bool {
	return p.NeighborCount >= minPts
}
