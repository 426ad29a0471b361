package graphml

import "errors"

// Sentinel errors specific to parsing the GraphML document itself, as
// opposed to errors in the graph it describes (those are validate's
// sentinels, wrapped unchanged).
var (
	// ErrMissingCoordinate indicates a <node> lacked an "x" or "y" data key.
	ErrMissingCoordinate = errors.New("graphml: node missing x or y coordinate")

	// ErrUnknownEdgeEndpoint indicates an <edge> referenced a node id that
	// was never declared with a <node> element.
	ErrUnknownEdgeEndpoint = errors.New("graphml: edge references unknown node id")
)
