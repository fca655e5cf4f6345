package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrVertexExists names a vertex ID already present. AddVertex does not
	// return it: re-adding a vertex is a no-op.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loops not allowed")

	// ErrEdgeExists names a pair already connected. AddEdge does not return
	// it: re-adding an edge is a no-op.
	ErrEdgeExists = errors.New("graph: edge already exists")
)
