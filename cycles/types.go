package cycles

import "github.com/katalvlaran/facewalk/core"

// CycleTree is one node of the minimal cycle basis forest: a simple face
// boundary (Cycle, with the closing vertex repeated at the end) plus the
// faces nested inside it (Children), as produced by wedge detachment
// (SPEC_FULL.md §4.7.1).
//
// A CycleTree with a nil Cycle is an aggregator node. §4.7's unwrap rule
// collapses an aggregator with zero or one child, but ExtractBasis returns
// one as is when a component yields two or more top-level trees, so
// Forest can contain aggregators.
type CycleTree struct {
	Cycle    []core.Name  `json:"cycle"`
	Children []*CycleTree `json:"children"`
}

// CycleTreeForest holds one CycleTree per connected component that
// yielded at least one face.
type CycleTreeForest []*CycleTree

// unwrap applies the §4.7/§4.7.1 unwrap rule: a cycle-less wrapper
// holding exactly one child collapses into that child; a cycle-less
// wrapper holding no children collapses to nil (nothing to report).
// A wrapper that carries a cycle of its own, or more than one child, is
// returned unchanged.
func unwrap(t *CycleTree) *CycleTree {
	if t == nil || len(t.Cycle) > 0 {
		return t
	}
	switch len(t.Children) {
	case 0:
		return nil
	case 1:
		return t.Children[0]
	default:
		return t
	}
}
