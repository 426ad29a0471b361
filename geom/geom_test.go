package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/facewalk/geom"
)

func TestWinding3(t *testing.T) {
	cases := []struct {
		name     string
		p1,p2,p3 geom.Point
		want     geom.Winding
	}{
		{"cw triangle", geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 0}, geom.CW},
		{"ccw triangle", geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1}, geom.CCW},
		{"colinear", geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Colinear},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, geom.Winding3(c.p1, c.p2, c.p3))
		})
	}
}

func TestWinding3_SelfDual(t *testing.T) {
	p1 := geom.Point{X: 0, Y: 0}
	p2 := geom.Point{X: 4, Y: 0}
	p3 := geom.Point{X: 4, Y: 3}

	fwd := geom.Winding3(p1, p2, p3)
	rev := geom.Winding3(p3, p2, p1)

	switch fwd {
	case geom.CW:
		assert.Equal(t, geom.CCW, rev)
	case geom.CCW:
		assert.Equal(t, geom.CW, rev)
	default:
		assert.Equal(t, geom.Colinear, rev)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	// crossing diagonals of a unit square
	assert.True(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1},
		geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 0},
	))

	// parallel, non-touching
	assert.False(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1},
	))

	// colinear overlap
	assert.True(t, geom.SegmentsIntersect(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0},
		geom.Point{X: 1, Y: 0}, geom.Point{X: 3, Y: 0},
	))
}

func square(x0, y0, side float64) []geom.Point {
	return []geom.Point{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}
}

func TestPointInPolygon(t *testing.T) {
	sq := square(0, 0, 10)

	assert.True(t, geom.PointInPolygon(sq, geom.Point{X: 5, Y: 5}))
	assert.False(t, geom.PointInPolygon(sq, geom.Point{X: 20, Y: 20}))
	assert.True(t, geom.PointInPolygon(sq, geom.Point{X: 0, Y: 5})) // on boundary
}

func TestPointOnBoundary(t *testing.T) {
	sq := square(0, 0, 10)

	assert.True(t, geom.PointOnBoundary(sq, geom.Point{X: 5, Y: 0}))
	assert.False(t, geom.PointOnBoundary(sq, geom.Point{X: 5, Y: 5}))
}

func TestPolygonArea(t *testing.T) {
	sq := square(0, 0, 10)
	w := geom.WindingN(sq)
	area := geom.PolygonArea(sq, w)
	assert.InDelta(t, 100.0, area, 1e-9)

	colinear := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.Equal(t, geom.Colinear, geom.WindingN(colinear))
	assert.Equal(t, 0.0, geom.PolygonArea(colinear, geom.Colinear))
}

func TestPolygonArea_NonNegativeRegardlessOfWinding(t *testing.T) {
	sq := square(0, 0, 5)
	reversed := make([]geom.Point, len(sq))
	for i, p := range sq {
		reversed[len(sq)-1-i] = p
	}

	wFwd := geom.WindingN(sq)
	wRev := geom.WindingN(reversed)
	assert.NotEqual(t, wFwd, wRev)

	areaFwd := geom.PolygonArea(sq, wFwd)
	areaRev := geom.PolygonArea(reversed, wRev)
	assert.InDelta(t, areaFwd, areaRev, 1e-9)
}
