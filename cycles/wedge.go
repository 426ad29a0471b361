package cycles

import (
	"github.com/katalvlaran/facewalk/components"
	"github.com/katalvlaran/facewalk/core"
)

// detachWedge processes the wedge at original bounded by minVertex and
// maxVertex (SPEC_FULL.md §4.7.1): every neighbor of original that falls
// strictly inside the wedge is moved onto a freshly cloned vertex, and
// the resulting separated piece is recursively reduced to its own
// CycleTree. Returns nil if no neighbor fell inside the wedge (nothing
// to detach).
func detachWedge(a *core.Arena, original, minVertex, maxVertex core.VertexHandle) *CycleTree {
	origin := a.Position(original)
	dMin := a.Position(minVertex).Sub(origin)
	dMax := a.Position(maxVertex).Sub(origin)
	convex := dMax.Cross(dMin) >= 0

	minName := a.Name(minVertex)
	maxName := a.Name(maxVertex)

	var inWedge []core.VertexHandle
	for _, v := range a.Neighbors(original) {
		if a.Name(v) == minName || a.Name(v) == maxName {
			continue
		}
		dVer := a.Position(v).Sub(origin)

		var inside bool
		if convex {
			inside = dVer.Cross(dMin) > 0 && dVer.Cross(dMax) < 0
		} else {
			inside = dVer.Cross(dMin) > 0 || dVer.Cross(dMax) < 0
		}
		if inside {
			inWedge = append(inWedge, v)
		}
	}
	if len(inWedge) == 0 {
		return nil
	}

	clone := a.Clone(original)
	for _, v := range inWedge {
		a.Disconnect(original, v)
		a.Connect(clone, v)
	}

	sub := components.Find(a, []core.VertexHandle{clone})[0]

	return ExtractBasis(a, sub)
}

// detachSingleEdge handles the degenerate closed-walk case (§4.7.1 step
// 3): a walk of length <= 3 is not a real face, just a branch's wedge
// folded back on itself. The sole edge (from, to) is moved onto a clone
// of from and the separated piece recurses the same way a multi-vertex
// wedge would.
func detachSingleEdge(a *core.Arena, from, to core.VertexHandle) *CycleTree {
	clone := a.Clone(from)
	a.Disconnect(from, to)
	a.Connect(clone, to)

	sub := components.Find(a, []core.VertexHandle{clone})[0]

	return ExtractBasis(a, sub)
}
