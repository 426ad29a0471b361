package facewalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/facewalk"
	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
	"github.com/katalvlaran/facewalk/validate"
)

func TestDiscover_Square(t *testing.T) {
	positions := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	edges := []core.RawEdge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0}}

	forest, err := facewalk.Discover(positions, edges)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Len(t, forest[0].Cycle, 5)
}

func TestDiscover_RejectsInvalidInput(t *testing.T) {
	positions := []geom.Point{{X: -1, Y: 0}, {X: 1, Y: 0}}
	edges := []core.RawEdge{{A: 0, B: 1}}

	_, err := facewalk.Discover(positions, edges)

	assert.ErrorIs(t, err, validate.ErrInvalidCoordinateSystem)
}

func TestGetAreaTree_Square(t *testing.T) {
	positions := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	edges := []core.RawEdge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0}}

	tree, err := facewalk.GetAreaTree(positions, edges)
	require.NoError(t, err)
	require.False(t, tree.IsRoot())
	require.Empty(t, tree.Children)
	assert.InDelta(t, 100, tree.Total, 1e-9)
	assert.InDelta(t, 100, tree.WithoutChildren, 1e-9)
}
