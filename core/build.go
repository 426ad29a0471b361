package core

import "github.com/katalvlaran/facewalk/geom"

// Build constructs an Arena from already-validated positions and edges
// (SPEC_FULL.md §4.3): one vertex record per distinct name referenced by
// at least one edge, with symmetric adjacency wired for every edge.
// Isolated positions that no edge touches never become arena slots.
//
// Build also returns the handles in first-appearance order, which is the
// order components.Find must walk to reproduce the reference DFS
// post-order (see adjacencySet's doc comment for why insertion order
// matters here).
func Build(positions []geom.Point, edges []RawEdge) (*Arena, []VertexHandle) {
	a := NewArena()
	byName := make(map[Name]VertexHandle, len(edges)*2)
	order := make([]VertexHandle, 0, len(edges)*2)

	getOrCreate := func(n Name) VertexHandle {
		if h, ok := byName[n]; ok {
			return h
		}
		h := a.AddVertex(n, positions[n])
		byName[n] = h
		order = append(order, h)

		return h
	}

	for _, e := range edges {
		ha := getOrCreate(Name(e.A))
		hb := getOrCreate(Name(e.B))
		a.Connect(ha, hb)
	}

	return a, order
}
