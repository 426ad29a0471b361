package cycles

import (
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/walk"
)

// leftmostVertex returns the vertex of comp with the smallest X position,
// breaking ties by smallest Y and then by smallest Name, so the seed
// choice is deterministic regardless of adjacency-build order.
func leftmostVertex(a *core.Arena, comp []core.VertexHandle) core.VertexHandle {
	best := comp[0]
	bestPos := a.Position(best)
	for _, v := range comp[1:] {
		p := a.Position(v)
		switch {
		case p.X < bestPos.X,
			p.X == bestPos.X && p.Y < bestPos.Y,
			p.X == bestPos.X && p.Y == bestPos.Y && a.Name(v) < a.Name(best):
			best, bestPos = v, p
		}
	}

	return best
}

// buildClosedWalk walks the boundary starting at start: clockwise-most
// out of start with no previous vertex, then counter-clockwise-most at
// every subsequent step, until the walk returns to start (SPEC_FULL.md
// §4.7). The returned slice always ends with start again, so its last
// element equals its first.
func buildClosedWalk(a *core.Arena, start core.VertexHandle) []core.VertexHandle {
	out := []core.VertexHandle{start}

	prev := core.ZeroHandle
	curr := start
	next := walk.ClockwiseMost(a, prev, curr)

	for {
		out = append(out, next)
		if next == start {
			return out
		}
		prev, curr = curr, next
		next = walk.CounterClockwiseMost(a, prev, curr)
	}
}
