package cycles

import "github.com/katalvlaran/facewalk/core"

// extractCycle copies w's vertex names into a cycle list and unwinds w's
// edges from the live graph so later iterations of the per-component
// loop do not rediscover it (SPEC_FULL.md §4.7.1 step 4). w is a
// simplified closed walk (w[0] == w[len(w)-1]) of at least three
// distinct vertices.
//
// Unwinding starts at the edge (w[0], w[1]) and walks forward popping
// sole neighbors until it either closes back on w[0] or reaches a
// branch point — a vertex of degree > 2, which is left in place since
// other faces still need it. If the forward walk did not close, the
// symmetric walk runs backward from w[0] to consume the remainder.
func extractCycle(a *core.Arena, w []core.VertexHandle) []core.Name {
	names := make([]core.Name, len(w))
	for i, h := range w {
		names[i] = a.Name(h)
	}

	v0, v1 := w[0], w[1]
	var marker core.VertexHandle
	hasMarker := a.Degree(v0) > 2
	if hasMarker {
		marker = v0
	}

	a.Disconnect(v0, v1)

	closed := unwindFrom(a, v1, v0, marker, hasMarker)
	if !closed {
		unwindFrom(a, v0, core.ZeroHandle, v1, true)
	}

	return names
}

// unwindFrom pops cur's sole neighbor and advances, stopping when cur
// reaches target (closed == true), hits marker (if hasMarker), or
// branches (degree != 1).
func unwindFrom(a *core.Arena, cur, target, marker core.VertexHandle, hasMarker bool) bool {
	for {
		if cur == target && !target.IsZero() {
			return true
		}
		if hasMarker && cur == marker {
			return cur == target
		}
		if a.Degree(cur) != 1 {
			return cur == target
		}
		next := a.Neighbors(cur)[0]
		a.Disconnect(cur, next)
		cur = next
	}
}
