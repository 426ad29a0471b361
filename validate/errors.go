package validate

import "errors"

// Sentinel errors for Check. Check reports ErrVerticesSamePosition before
// ErrInvalidCoordinateSystem; see doc.go for the full order.
var (
	// ErrGraphEmpty indicates no positions or no edges were supplied.
	ErrGraphEmpty = errors.New("validate: graph is empty")

	// ErrInvalidCoordinateSystem indicates a negative coordinate.
	ErrInvalidCoordinateSystem = errors.New("validate: coordinates must be non-negative")

	// ErrVerticesSamePosition indicates two distinct vertices share a position.
	ErrVerticesSamePosition = errors.New("validate: two vertices have the same position")

	// ErrEdgeEndpointOutOfBounds indicates an edge references an index outside [0, len(positions)-1].
	ErrEdgeEndpointOutOfBounds = errors.New("validate: edge endpoint out of bounds")

	// ErrDuplicateEdge indicates an ordered (a,b) pair was supplied more than once.
	ErrDuplicateEdge = errors.New("validate: duplicate edge")
)
