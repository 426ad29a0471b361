// Package geom is the floating-point geometry kernel underneath facewalk.
//
// It provides the handful of predicates the planar face discovery engine
// needs and nothing else: three-point and polygon winding, the on-segment
// test, segment intersection, point-in-polygon, point-on-boundary, and
// signed polygon area. Every predicate is stated here as a single literal
// expression matched to a specific evaluation order; callers must not
// algebraically rearrange them, since two differently-ordered but
// mathematically equivalent formulations can round differently in
// float64 and change which side of a near-zero determinant a point falls
// on. See Winding3 for the canonical example.
//
// Complexity: every function here is O(1) except WindingN, PolygonArea,
// PointInPolygon and PointOnBoundary, which are O(n) in the polygon's
// vertex count.
package geom
