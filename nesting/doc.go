// Package nesting turns a flat CycleTreeForest into an AreaTree: faces
// ordered from outermost to innermost by geometric containment rather
// than by the wedge-detachment parent/child relationship the cycles
// package already encodes structurally (SPEC_FULL.md §4.8).
//
// The two nestings usually agree, but not always — wedge detachment
// nests by how a face was carved out of a self-intersecting walk, while
// AreaTree nests strictly by "does one of this polygon's vertices lie
// inside that one, with not all of its vertices on that one's boundary".
// Build flattens the forest, resolves each face's polygon and
// signed area, and re-parents purely on containment.
package nesting
