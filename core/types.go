package core

import "github.com/katalvlaran/facewalk/geom"

// Name is the stable original index of an input vertex. Multiple arena
// slots (VertexHandle values) can carry the same Name: wedge detachment
// clones a vertex into a fresh slot with the same Name and Position but
// a distinct identity, so Name is never a primary key once extraction
// begins.
type Name int

// VertexHandle is a generational index into an Arena.
//
// Arena slots are append-only within one discovery session, so Gen is
// always 0 today; it is still part of the type so a future Arena that
// recycles freed slots (there is currently nothing to free — see doc.go)
// can start stamping it without changing every caller's signature.
type VertexHandle struct {
	Index uint32
	Gen   uint32
}

// ZeroHandle is the distinguished "no vertex" handle, used in place of a
// null pointer (e.g. the planar walker's "no previous vertex" case).
var ZeroHandle = VertexHandle{}

// IsZero reports whether h is the distinguished absent handle.
func (h VertexHandle) IsZero() bool {
	return h == ZeroHandle
}

// VertexState is a vertex's DFS visitation marker.
type VertexState uint8

const (
	// Unvisited: not yet reached by the current traversal.
	Unvisited VertexState = iota
	// Discovered: pushed onto the traversal stack, not yet finished.
	Discovered
	// Finished: popped; all of its reachable descendants are finished too.
	Finished
)

// RawEdge is an unordered pair of input vertex indices, exactly as
// supplied by the caller before validation assigns any meaning to it.
type RawEdge struct {
	A, B int
}

// vertexRecord is one arena slot.
type vertexRecord struct {
	name  Name
	pos   geom.Point
	adj   *adjacencySet
	state VertexState
}
