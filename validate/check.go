package validate

import (
	"fmt"

	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
)

// Check runs the full precondition scan over positions and edges and
// returns the first violated rule, in the order documented in doc.go.
// A nil error means positions/edges are safe to hand to core.Build.
//
// Complexity: O(len(positions)^2) for the pairwise same-position scan
// (SPEC_FULL.md does not call for a spatial index here; inputs are
// expected to be small planar embeddings, not bulk point clouds), plus
// O(len(edges)) for endpoint and duplicate checks.
func Check(positions []geom.Point, edges []core.RawEdge) error {
	if len(positions) == 0 || len(edges) == 0 {
		return ErrGraphEmpty
	}

	// Precedence here follows SPEC_FULL.md §8 invariant 7 exactly:
	// same-position collisions are reported before coordinate-sign
	// violations, even though the two checks read as same-pass prose in
	// §4.2 — the testable-properties section is the authoritative order.
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if positions[i] == positions[j] {
				return fmt.Errorf("validate: positions %d and %d coincide: %w", i, j, ErrVerticesSamePosition)
			}
		}
	}
	for i, p := range positions {
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("validate: position %d (%v): %w", i, p, ErrInvalidCoordinateSystem)
		}
	}

	maxIdx := len(positions) - 1
	seen := make(map[core.RawEdge]struct{}, len(edges))
	for i, e := range edges {
		if e.A < 0 || e.A > maxIdx || e.B < 0 || e.B > maxIdx {
			return fmt.Errorf("validate: edge %d (%d,%d): %w", i, e.A, e.B, ErrEdgeEndpointOutOfBounds)
		}
		if _, ok := seen[e]; ok {
			return fmt.Errorf("validate: edge %d (%d,%d): %w", i, e.A, e.B, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}
	}

	return nil
}
