// Package deleter implements the Deleter: the operation that retracts one
// occurrence of a point and repairs the clustering, including splitting a
// cluster apart when the deletion severs its one remaining bridge.
//
// Grounded on incdbscan's _deleter.py (Deleter.delete and its private
// helpers) for the case analysis, and on lvlath's bfs package for the
// queue-driven walker shape the multi-seed component finder is built on —
// here the walker grows a scratch graph instead of recording visit order.
package deleter
