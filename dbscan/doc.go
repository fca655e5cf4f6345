// Package dbscan implements the classical, non-incremental DBSCAN
// algorithm (Ester et al. 1996) as a reference oracle. It shares its
// distance semantics with the incremental engine by querying the same
// radiusindex.Index, so its output can be compared directly against
// incdbscan.Engine's incremental result for equivalence checks.
package dbscan
