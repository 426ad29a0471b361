// Package cycles implements the per-component minimal cycle basis
// extractor (SPEC_FULL.md §4.7): the repeated leftmost-vertex walk,
// wedge detachment of closed-walk self-intersections, and the CycleTree
// forest those walks produce.
//
// ExtractBasis is the entry point for one connected component. It loops:
// prune filaments, find the leftmost vertex, walk a clockwise/counter-
// clockwise boundary from it, turn that closed walk into a CycleTree
// (recursing into any wedges the walk detaches along the way), and
// repeat until the component is exhausted. Forest assembles the results
// across every component of an Arena.
//
// Every face this package emits is a simple cycle: wedge detachment's
// job is precisely to carve self-intersecting walks into simple ones,
// recursively, so CycleTree.Cycle never repeats a name except the
// closing duplicate.
package cycles
