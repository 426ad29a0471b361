package geom

// PointInPolygon reports whether p lies inside the closed polygon poly
// (poly is NOT expected to repeat its first point), using a horizontal
// ray cast to the right of the polygon's bounding box.
//
// The ray runs from p to (maxX+10, p.Y), where maxX is the largest X
// coordinate in poly; +10 is an arbitrary margin large enough to clear
// the polygon for any input this package validates (coordinates are
// finite and non-negative; see validate.ErrInvalidCoordinateSystem).
// Crossings are counted with the standard even-odd rule: a non-colinear
// crossing increments the count, a colinear one resolves immediately by
// an on-segment test against that edge.
func PointInPolygon(poly []Point, p Point) bool {
	maxX := poly[0].X
	for _, v := range poly[1:] {
		if v.X > maxX {
			maxX = v.X
		}
	}
	far := Point{X: maxX + 10, Y: p.Y}

	count := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		from := poly[i]
		to := poly[(i+1)%n]

		w := Winding3(p, far, from)
		w2 := Winding3(p, far, to)
		w3 := Winding3(from, to, p)
		w4 := Winding3(from, to, far)

		if w3 == Colinear && SegmentsIntersect(p, far, from, to) {
			return OnSegment(from, p, to)
		}

		if w != w2 && w3 != w4 {
			count++
		}
	}

	return count%2 == 1
}

// PolygonArea computes the signed area of a closed polygon via the
// shoelace formula, reported as a non-negative magnitude.
//
// winding must be the polygon's own orientation (from WindingN); each
// segment (x1,y1)-(x2,y2) contributes ((y1+y2)/2)*(x2-x1), the sum is
// negated for CCW polygons so the result is always >= 0, and a Colinear
// winding (degenerate polygon) short-circuits to 0.
func PolygonArea(poly []Point, winding Winding) float64 {
	if winding == Colinear {
		return 0
	}

	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += ((a.Y + b.Y) / 2) * (b.X - a.X)
	}

	if winding == CCW {
		sum = -sum
	}

	return sum
}
