// Package radiusindex implements the numeric radius search index the
// clustering engine treats as a black box: given a query vector and a fixed
// ε, return every stored identifier within ε under the configured metric.
//
// The implementation is a uniform spatial grid ("bucket index"), the same
// cell-based adjacency idea lvlath/gridgraph uses for 2D island detection,
// generalized here to arbitrary dimensionality and to continuous float64
// coordinates. Cells have side length ε, so any point within ε of a query
// value lies in the query's own cell or one of its immediate neighbors in
// every dimension — the index only has to examine that 3^d block before
// doing the exact distance check that makes results precise rather than
// approximate.
//
// Insert is O(1) amortized and Remove is linear only in the occupancy of
// one cell (no periodic rebuild is needed, unlike a kd-tree), which matters
// because the engine calls them once per streamed point.
package radiusindex
