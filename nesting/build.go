package nesting

import (
	"sort"

	"github.com/katalvlaran/facewalk/cycles"
	"github.com/katalvlaran/facewalk/diag"
	"github.com/katalvlaran/facewalk/geom"
)

// Build assembles the AreaTree for forest: every face is resolved to a
// Polygon against positions, ordered by descending area (ties broken by
// pre-order discovery index), and placed under the smallest already-
// placed face that contains it (see contains) — or under the synthetic root if
// none does (SPEC_FULL.md §4.8). log receives a "counter" record with
// the total face count (diag.Noop() for callers that don't want this).
func Build(forest cycles.CycleTreeForest, positions []geom.Point, log *diag.Logger) *AreaTree {
	entries := flatten(forest, positions)
	log.Counter("polygons", len(entries))

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].polygon.Area != entries[j].polygon.Area {
			return entries[i].polygon.Area > entries[j].polygon.Area
		}

		return entries[i].order < entries[j].order
	})

	root := &AreaTree{}
	for i, e := range entries {
		node := &AreaTree{
			Polygon:         e.polygon,
			PolygonIndex:    i,
			Total:           e.polygon.Area,
			WithoutChildren: e.polygon.Area,
		}
		parent := tightestContainer(root, e.polygon)
		parent.Children = append(parent.Children, node)
		if !parent.IsRoot() {
			parent.WithoutChildren -= node.Total
		}
	}

	return root
}

// tightestContainer returns the deepest descendant of node (node itself
// included) whose polygon contains child, recursing into whichever
// child node contains it, if any.
func tightestContainer(node *AreaTree, child Polygon) *AreaTree {
	for _, c := range node.Children {
		if contains(c.Polygon, child) {
			return tightestContainer(c, child)
		}
	}

	return node
}

// contains reports whether inner is a child of outer (SPEC_FULL.md
// §4.8): inner's first vertex lies inside outer (geom.PointInPolygon,
// which counts a point on outer's boundary as inside), and inner is not
// entirely incident on outer's boundary. The second
// condition excludes a face that only touches its would-be parent along
// a shared edge — the planar decomposition already keeps those as
// siblings, not children.
func contains(outer, inner Polygon) bool {
	if len(inner.Points) == 0 || !geom.PointInPolygon(outer.Points, inner.Points[0]) {
		return false
	}

	for _, p := range inner.Points {
		if !geom.PointOnBoundary(outer.Points, p) {
			return true
		}
	}

	return false
}
