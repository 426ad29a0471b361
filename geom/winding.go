package geom

// Winding3 classifies the orientation of three ordered points p1, p2, p3.
//
// It sums the shoelace contribution of the three directed edges
// p1->p2->p3->p1:
//
//	s = (x2-x1)(y2+y1) + (x3-x2)(y3+y2) + (x1-x3)(y1+y3)
//
// and returns CW if s > 0, CCW if s < 0, Colinear if s == 0. This is the
// textbook "shoelace" sign test; it must be evaluated in exactly this term
// order so repeated calls on the same three points are bit-identical.
func Winding3(p1, p2, p3 Point) Winding {
	s := (p2.X-p1.X)*(p2.Y+p1.Y) +
		(p3.X-p2.X)*(p3.Y+p2.Y) +
		(p1.X-p3.X)*(p1.Y+p3.Y)

	return windingFromSign(s)
}

// WindingN generalizes Winding3 to a closed polygon of n >= 3 points.
// pts is NOT expected to repeat its first point at the end; WindingN
// closes the loop itself by wrapping the index.
func WindingN(pts []Point) Winding {
	var s float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		s += (b.X - a.X) * (b.Y + a.Y)
	}

	return windingFromSign(s)
}

func windingFromSign(s float64) Winding {
	switch {
	case s > 0:
		return CW
	case s < 0:
		return CCW
	default:
		return Colinear
	}
}

// OnSegment reports whether q lies within the axis-aligned bounding box of
// p and r, inclusive. It is a necessary (not sufficient) condition for "q
// lies on segment p-r"; callers combine it with a colinearity check.
func OnSegment(p, q, r Point) bool {
	return q.X <= maxF(p.X, r.X) && q.X >= minF(p.X, r.X) &&
		q.Y <= maxF(p.Y, r.Y) && q.Y >= minF(p.Y, r.Y)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
