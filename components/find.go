package components

import "github.com/katalvlaran/facewalk/core"

// frame is one stack entry of the iterative DFS: the vertex it represents,
// a snapshot of its neighbors, and a cursor into that snapshot.
type frame struct {
	h         core.VertexHandle
	neighbors []core.VertexHandle
	next      int
}

// Find decomposes the vertices reachable from seeds into connected
// components, each in DFS post-order, and resets every visited marker
// back to core.Unvisited before returning.
//
// seeds is normally the full vertex set an Arena was built with (in
// first-appearance order, as core.Build returns it), so that ties in
// which vertex starts a component are broken the same way the reference
// fixtures were generated. seeds may also be a single re-entry point
// after wedge detachment (cycles/wedge.go); the reset below must cover
// every vertex actually discovered, not just seeds itself, or a vertex
// reachable only through a later seed is left Finished forever and a
// subsequent Find over the same region silently skips it.
//
// Complexity: O(V+E) over the subgraph reachable from seeds.
func Find(a *core.Arena, seeds []core.VertexHandle) [][]core.VertexHandle {
	var result [][]core.VertexHandle
	var discovered []core.VertexHandle

	for _, seed := range seeds {
		if a.State(seed) != core.Unvisited {
			continue
		}

		comp := discoverOne(a, seed)
		result = append(result, comp)
		discovered = append(discovered, comp...)
	}

	a.ResetStates(discovered)

	return result
}

func discoverOne(a *core.Arena, seed core.VertexHandle) []core.VertexHandle {
	var comp []core.VertexHandle
	var stack []*frame

	push := func(h core.VertexHandle) {
		a.SetState(h, core.Discovered)
		stack = append(stack, &frame{h: h, neighbors: a.Neighbors(h)})
	}
	push(seed)

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		pushed := false
		for top.next < len(top.neighbors) {
			nb := top.neighbors[top.next]
			top.next++
			if a.State(nb) == core.Unvisited {
				push(nb)
				pushed = true
				break
			}
		}
		if pushed {
			continue
		}

		// No unvisited neighbor remains: finish and pop.
		stack = stack[:len(stack)-1]
		a.SetState(top.h, core.Finished)
		comp = append(comp, top.h)
	}

	return comp
}
