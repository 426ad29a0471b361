package core

import "github.com/katalvlaran/facewalk/geom"

// Arena is the append-only vertex store for a single discovery session.
//
// Complexity: AddVertex and Clone are O(1) amortized; Connect and HasEdge
// are O(1) amortized; Disconnect is O(degree) to keep adjacency order
// contiguous (see adjacencySet.remove); Neighbors is O(degree).
type Arena struct {
	verts []vertexRecord
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// AddVertex appends a new arena slot for name at pos and returns its
// handle.
//
// Slot indices are 1-based internally (Index-1 into a.verts) so that
// ZeroHandle{0,0} never collides with a real slot; rec() undoes the
// offset.
func (a *Arena) AddVertex(name Name, pos geom.Point) VertexHandle {
	h := VertexHandle{Index: uint32(len(a.verts)) + 1}
	a.verts = append(a.verts, vertexRecord{
		name: name,
		pos:  pos,
		adj:  newAdjacencySet(),
	})

	return h
}

// Clone duplicates the name and position of h into a fresh arena slot
// with empty adjacency, as required by wedge detachment (SPEC_FULL.md
// §4.7.1): the clone is a new identity sharing the same Name, so callers
// must transfer specific edges onto it themselves via Connect/Disconnect.
func (a *Arena) Clone(h VertexHandle) VertexHandle {
	rec := a.rec(h)

	return a.AddVertex(rec.name, rec.pos)
}

func (a *Arena) rec(h VertexHandle) *vertexRecord {
	return &a.verts[h.Index-1]
}

// Name returns h's original input index.
func (a *Arena) Name(h VertexHandle) Name {
	return a.rec(h).name
}

// Position returns h's fixed 2D position.
func (a *Arena) Position(h VertexHandle) geom.Point {
	return a.rec(h).pos
}

// Degree returns the number of live adjacency entries at h.
func (a *Arena) Degree(h VertexHandle) int {
	return a.rec(h).adj.size()
}

// Neighbors returns a snapshot of h's adjacent handles in insertion order.
func (a *Arena) Neighbors(h VertexHandle) []VertexHandle {
	return a.rec(h).adj.slice()
}

// HasEdge reports whether u and v are currently adjacent.
func (a *Arena) HasEdge(u, v VertexHandle) bool {
	return a.rec(u).adj.has(v)
}

// Connect inserts the undirected edge (u,v) symmetrically. A self-edge
// (u == v) is silently dropped rather than reported as an error:
// validate does not reject a self-loop input edge, so Build can pass one
// here, while wedge detachment never wires a vertex to itself.
func (a *Arena) Connect(u, v VertexHandle) {
	if u == v {
		return
	}
	a.rec(u).adj.add(v)
	a.rec(v).adj.add(u)
}

// Disconnect removes the undirected edge (u,v) symmetrically, if present.
func (a *Arena) Disconnect(u, v VertexHandle) {
	a.rec(u).adj.remove(v)
	a.rec(v).adj.remove(u)
}

// State returns h's current DFS visitation marker.
func (a *Arena) State(h VertexHandle) VertexState {
	return a.rec(h).state
}

// SetState sets h's DFS visitation marker.
func (a *Arena) SetState(h VertexHandle, s VertexState) {
	a.rec(h).state = s
}

// ResetStates marks every handle in hs as Unvisited, as required after
// each full component-discovery pass (SPEC_FULL.md §4.4).
func (a *Arena) ResetStates(hs []VertexHandle) {
	for _, h := range hs {
		a.rec(h).state = Unvisited
	}
}
