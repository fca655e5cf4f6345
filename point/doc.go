// Package point is the single source of truth for Point records, the
// ε-neighbor graph, and the radius index that feeds it — the PointStore of
// the engine's design. It owns every mutation that touches a point's
// multiplicity or density, and hands a consistent view of both to the
// Inserter and Deleter.
//
// Grounded on incdbscan's _objects.py (Objects.insert_object /
// delete_object): the same re-insertion-bumps-count, first-insertion-wires-
// neighbors, count-reaches-zero-tears-down lifecycle, expressed over
// lvlath-style arena storage (points keyed by stable content-hash id,
// neighbor sets held by package graph rather than by reference cycles).
package point
