// Package facewalk extracts the minimal cycle basis of an embedded
// planar graph and, optionally, nests its faces by geometric
// containment. Discover and GetAreaTree are the two entry points
// SPEC_FULL.md §6 defines; everything else (geom, core, validate,
// components, walk, cycles, nesting, graphml) is reachable but meant to
// be driven through this package or cmd/facewalk.
package facewalk

import (
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/cycles"
	"github.com/katalvlaran/facewalk/diag"
	"github.com/katalvlaran/facewalk/geom"
	"github.com/katalvlaran/facewalk/nesting"
	"github.com/katalvlaran/facewalk/validate"
)

// Discover validates positions/edges, builds the arena, and extracts the
// minimal cycle basis forest. On failure the returned error wraps one of
// the validate package's sentinel errors (see validate.Check), testable
// with errors.Is.
func Discover(positions []geom.Point, edges []core.RawEdge) (cycles.CycleTreeForest, error) {
	return DiscoverWithLogger(positions, edges, diag.Noop())
}

// DiscoverWithLogger is Discover with an explicit diagnostics sink.
func DiscoverWithLogger(positions []geom.Point, edges []core.RawEdge, log *diag.Logger) (cycles.CycleTreeForest, error) {
	if err := validate.Check(positions, edges); err != nil {
		return nil, err
	}

	a, order := core.Build(positions, edges)
	log.Stage("build")

	return cycles.Forest(a, order, log), nil
}

// GetAreaTree runs Discover and nests the resulting faces by geometric
// containment into an AreaTree (SPEC_FULL.md §4.8). When the root holds
// exactly one outermost face, that face's Child node is returned in place
// of the root.
func GetAreaTree(positions []geom.Point, edges []core.RawEdge) (*nesting.AreaTree, error) {
	forest, err := Discover(positions, edges)
	if err != nil {
		return nil, err
	}

	tree := nesting.Build(forest, positions, diag.Noop())
	if len(tree.Children) == 1 {
		return tree.Children[0], nil
	}

	return tree, nil
}
