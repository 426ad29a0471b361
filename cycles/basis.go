package cycles

import (
	"github.com/katalvlaran/facewalk/components"
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/diag"
	"github.com/katalvlaran/facewalk/walk"
)

// ExtractBasis reduces one connected component to its CycleTree, or nil
// if the component contains no face at all (e.g. it is pure filament).
// It repeatedly prunes filaments, walks a closed boundary from the
// leftmost surviving vertex, and turns that walk into a CycleTree,
// until nothing is left (SPEC_FULL.md §4.7).
func ExtractBasis(a *core.Arena, comp []core.VertexHandle) *CycleTree {
	var children []*CycleTree

	comp = walk.PruneFilaments(a, comp)
	for len(comp) > 0 {
		start := leftmostVertex(a, comp)
		w := buildClosedWalk(a, start)

		if tree := cycleTreeFromClosedWalk(a, w); tree != nil {
			children = append(children, tree)
		}

		comp = pruneZeroAdjacency(a, comp)
		comp = walk.PruneFilaments(a, comp)
	}

	return unwrap(&CycleTree{Children: children})
}

// Forest runs ExtractBasis over every connected component reachable from
// seeds, skipping components that yield no face. log receives a
// "components" counter, a "stage" record per component and a "faces"
// counter with the number of cycle-carrying nodes in the whole forest
// (diag.Noop() for callers that don't want any of this).
func Forest(a *core.Arena, seeds []core.VertexHandle, log *diag.Logger) CycleTreeForest {
	comps := components.Find(a, seeds)
	log.Counter("components", len(comps))

	var forest CycleTreeForest
	for _, comp := range comps {
		log.Stage("extract-component")
		if tree := ExtractBasis(a, comp); tree != nil {
			forest = append(forest, tree)
		}
	}
	faces := 0
	var count func(t *CycleTree)
	count = func(t *CycleTree) {
		if len(t.Cycle) > 0 {
			faces++
		}
		for _, c := range t.Children {
			count(c)
		}
	}
	for _, tree := range forest {
		count(tree)
	}
	log.Counter("faces", faces)

	return forest
}

// pruneZeroAdjacency drops vertices left with no edges at all, without
// disturbing vertices that still have one or more (filament pruning runs
// separately and handles degree-1 chains).
func pruneZeroAdjacency(a *core.Arena, comp []core.VertexHandle) []core.VertexHandle {
	out := comp[:0:0]
	for _, v := range comp {
		if a.Degree(v) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// cycleTreeFromClosedWalk implements SPEC_FULL.md §4.7.1: simplify w's
// self-intersections, then either detach every wedge and finalize a real
// cycle (len(w) > 3), or — for the degenerate two-edge case — detach the
// single edge and recurse directly.
func cycleTreeFromClosedWalk(a *core.Arena, w []core.VertexHandle) *CycleTree {
	w, detachments := simplifyWalk(w)

	if len(w) <= 3 {
		child := detachSingleEdge(a, w[0], w[1])
		if child == nil {
			return nil
		}

		return unwrap(&CycleTree{Children: []*CycleTree{child}})
	}

	detachments = append(detachments, 0)

	var children []*CycleTree
	for _, i := range detachments {
		original := w[i]
		maxVertex := w[i+1]
		var minVertex core.VertexHandle
		if i == 0 {
			minVertex = w[len(w)-2]
		} else {
			minVertex = w[i-1]
		}

		if child := detachWedge(a, original, minVertex, maxVertex); child != nil {
			children = append(children, child)
		}
	}

	names := extractCycle(a, w)

	return &CycleTree{Cycle: names, Children: children}
}
