// Package insert implements the Inserter: the one operation that turns a
// freshly-admitted Point into a correctly labeled member of the clustering.
//
// Grounded directly on incdbscan's _inserter.py (Inserter.insert and its
// private helpers), with connected components computed by package graph's
// union-find instead of building a throwaway networkx graph per call.
package insert
