package walk

import "github.com/katalvlaran/facewalk/core"

// PruneFilaments removes every maximal degree-1 dangling path from comp
// (SPEC_FULL.md §4.5) and returns the surviving vertices — the vertices
// of comp whose adjacency size is still > 0 afterward. comp itself is
// left untouched; a fresh slice is returned.
//
// Post-condition: the returned component is either empty (the whole
// input was filaments) or every vertex in it has degree >= 2.
func PruneFilaments(a *core.Arena, comp []core.VertexHandle) []core.VertexHandle {
	var endpoints []core.VertexHandle
	for _, v := range comp {
		if a.Degree(v) == 1 {
			endpoints = append(endpoints, v)
		}
	}

	for _, start := range endpoints {
		cur := start
		for a.Degree(cur) == 1 {
			next := a.Neighbors(cur)[0]
			a.Disconnect(cur, next)
			cur = next
		}
	}

	out := make([]core.VertexHandle, 0, len(comp))
	for _, v := range comp {
		if a.Degree(v) > 0 {
			out = append(out, v)
		}
	}

	return out
}
