// Package incdbscan is an incremental density-based clustering engine.
//
// Given a radius ε and a density threshold m, it maintains, under
// streaming insertions and deletions, the exact clustering that batch
// DBSCAN (Ester et al. 1996) would produce over the current point set.
// Every update is resolved locally: an insert or delete touches only the
// neighborhood the mutation actually affects, never the whole dataset.
//
// The engine is organized as collaborating components, each its own
// subpackage:
//
//	metric/      — the distance function (Euclidean, Minkowski, Manhattan, custom)
//	radiusindex/ — the ε-ball lookup structure points are admitted through
//	graph/       — the undirected ε-neighbor graph and its connected components
//	label/       — the bidirectional point<->cluster-label mapping
//	point/       — the Point record store tying the above together
//	insert/      — the Inserter: classifies a freshly admitted point
//	deleter/     — the Deleter: retracts a point and repairs the clustering
//
// This package wires them into the single Engine a caller drives through
// New, InsertBatch, DeleteBatch, and LabelOf.
package incdbscan
