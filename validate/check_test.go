package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
	"github.com/katalvlaran/facewalk/validate"
)

func TestCheck_GraphEmpty(t *testing.T) {
	assert.ErrorIs(t, validate.Check(nil, []core.RawEdge{{A: 0, B: 1}}), validate.ErrGraphEmpty)
	assert.ErrorIs(t, validate.Check([]geom.Point{{X: 0, Y: 0}}, nil), validate.ErrGraphEmpty)
}

func TestCheck_EdgeEndpointOutOfBounds(t *testing.T) {
	positions := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 99}})
	assert.ErrorIs(t, err, validate.ErrEdgeEndpointOutOfBounds)
}

func TestCheck_VerticesSamePosition(t *testing.T) {
	positions := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}})
	assert.ErrorIs(t, err, validate.ErrVerticesSamePosition)
}

func TestCheck_InvalidCoordinateSystem(t *testing.T) {
	positions := []geom.Point{{X: -1, Y: 0}, {X: 1, Y: 0}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}})
	assert.ErrorIs(t, err, validate.ErrInvalidCoordinateSystem)
}

func TestCheck_DuplicateEdge(t *testing.T) {
	positions := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}, {A: 0, B: 1}})
	assert.ErrorIs(t, err, validate.ErrDuplicateEdge)
}

func TestCheck_ReversedDuplicateEdgeIsNotRejected(t *testing.T) {
	// Open question 1: (a,b) and (b,a) are distinct ordered keys.
	positions := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}, {A: 1, B: 0}})
	assert.NoError(t, err)
}

func TestCheck_SamePositionTakesPrecedenceOverCoordinateSign(t *testing.T) {
	// Both violations are present; VerticesSamePosition must win (§8 invariant 7).
	positions := []geom.Point{{X: -1, Y: -1}, {X: -1, Y: -1}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}})
	assert.ErrorIs(t, err, validate.ErrVerticesSamePosition)
}

func TestCheck_ValidInputPasses(t *testing.T) {
	positions := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	err := validate.Check(positions, []core.RawEdge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 0}})
	assert.NoError(t, err)
}
