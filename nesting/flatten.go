package nesting

import (
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/cycles"
	"github.com/katalvlaran/facewalk/geom"
)

// entry is one flattened face awaiting placement into the AreaTree, kept
// alongside its pre-order discovery index so area ties break
// deterministically.
type entry struct {
	polygon Polygon
	order   int
}

// flatten walks forest in pre-order and resolves every face's Polygon
// (stripping the cycle's closing duplicate name, looking up each
// vertex's position by name in positions).
func flatten(forest cycles.CycleTreeForest, positions []geom.Point) []entry {
	var out []entry
	var visit func(n *cycles.CycleTree)
	visit = func(n *cycles.CycleTree) {
		if n == nil {
			return
		}
		if len(n.Cycle) > 0 {
			out = append(out, entry{polygon: resolvePolygon(n.Cycle, positions), order: len(out)})
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, root := range forest {
		visit(root)
	}

	return out
}

// resolvePolygon strips cycle's trailing closing-duplicate name and
// resolves the remaining names to positions and signed area.
func resolvePolygon(cycle []core.Name, positions []geom.Point) Polygon {
	names := cycle[:len(cycle)-1]
	points := make([]geom.Point, len(names))
	for i, n := range names {
		points[i] = positions[int(n)]
	}

	area := geom.PolygonArea(points, geom.WindingN(points))

	return Polygon{Names: append([]core.Name(nil), names...), Points: points, Area: area}
}
