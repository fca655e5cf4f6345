// Package graph implements the undirected, simple neighbor graph that backs
// the clustering engine's point set.
//
// Vertices are point identifiers (content-hash strings); an edge (a,b) exists
// iff a≠b and the two points are within ε of each other under the configured
// metric. The graph never stores weights, self-loops, or parallel edges — the
// density model lives one layer up, in package point.
//
// Unlike lvlath's core.Graph, this type carries no internal locking: the
// engine is specified as single-threaded and cooperative-serial (callers
// serialize their own access), so every method here assumes exclusive access
// for its duration.
package graph
