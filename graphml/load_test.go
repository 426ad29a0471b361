package graphml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
	"github.com/katalvlaran/facewalk/graphml"
	"github.com/katalvlaran/facewalk/validate"
)

const squareDoc = `<?xml version="1.0"?>
<graphml>
  <key id="d0" attr.name="x"/>
  <key id="d1" attr.name="y"/>
  <graph edgedefault="undirected">
    <node id="n0"><data key="d0">0</data><data key="d1">0</data></node>
    <node id="n1"><data key="d0">10</data><data key="d1">0</data></node>
    <node id="n2"><data key="d0">10</data><data key="d1">10</data></node>
    <node id="n3"><data key="d0">0</data><data key="d1">10</data></node>
    <edge source="n0" target="n1"/>
    <edge source="n1" target="n2"/>
    <edge source="n2" target="n3"/>
    <edge source="n3" target="n0"/>
  </graph>
</graphml>`

func TestLoad_ParsesSquare(t *testing.T) {
	positions, edges, err := graphml.Load(strings.NewReader(squareDoc))

	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, positions)
	assert.Len(t, edges, 4)
	assert.Equal(t, core.RawEdge{A: 0, B: 1}, edges[0])
}

func TestLoad_MissingCoordinateFails(t *testing.T) {
	const bad = `<graphml>
    <key id="d0" attr.name="x"/>
    <graph>
      <node id="n0"><data key="d0">0</data></node>
    </graph>
  </graphml>`

	_, _, err := graphml.Load(strings.NewReader(bad))

	assert.ErrorIs(t, err, graphml.ErrMissingCoordinate)
}

func TestLoad_UnknownEdgeEndpointFails(t *testing.T) {
	const bad = `<graphml>
    <key id="d0" attr.name="x"/>
    <key id="d1" attr.name="y"/>
    <graph>
      <node id="n0"><data key="d0">0</data><data key="d1">0</data></node>
      <edge source="n0" target="ghost"/>
    </graph>
  </graphml>`

	_, _, err := graphml.Load(strings.NewReader(bad))

	assert.ErrorIs(t, err, graphml.ErrUnknownEdgeEndpoint)
}

func TestLoad_InvalidGraphRejectedByValidate(t *testing.T) {
	const bad = `<graphml>
    <key id="d0" attr.name="x"/>
    <key id="d1" attr.name="y"/>
    <graph>
      <node id="n0"><data key="d0">-1</data><data key="d1">0</data></node>
      <node id="n1"><data key="d0">1</data><data key="d1">0</data></node>
      <edge source="n0" target="n1"/>
    </graph>
  </graphml>`

	_, _, err := graphml.Load(strings.NewReader(bad))

	assert.ErrorIs(t, err, validate.ErrInvalidCoordinateSystem)
}
