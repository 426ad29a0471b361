package nesting

import (
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
)

// Polygon is one face's resolved boundary: the vertex names in walk
// order (the cycle's closing duplicate stripped), their positions in
// the same order, and the signed area magnitude used to order faces by
// nesting depth.
type Polygon struct {
	Names  []core.Name
	Points []geom.Point
	Area   float64
}

// AreaTree nests faces strictly by geometric containment (SPEC_FULL.md
// §4.8). The tree's Root has a zero Polygon (Names == nil) and exists
// only to hold every outermost face as a Child; every other node carries
// a real Polygon plus its area annotation: Total is the polygon's own
// area, WithoutChildren starts equal to Total and is decremented by
// each direct child's Total as that child is assigned (invariant 6).
// PolygonIndex is the node's position in the descending-area sort Build
// produces, not its pre-order discovery index.
type AreaTree struct {
	Polygon         Polygon
	PolygonIndex    int
	Total           float64
	WithoutChildren float64
	Children        []*AreaTree
}

// IsRoot reports whether t is the synthetic root node.
func (t *AreaTree) IsRoot() bool {
	return t.Polygon.Names == nil
}
