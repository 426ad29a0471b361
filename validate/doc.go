// Package validate rejects malformed discovery input before the core
// engine ever mutates an Arena.
//
// Checks run in a fixed, observable order (SPEC_FULL.md §4.2) and the
// first violated rule wins:
//
//  1. ErrGraphEmpty               — no positions or no edges at all.
//  2. ErrVerticesSamePosition     — two distinct positions coincide.
//  3. ErrInvalidCoordinateSystem  — a coordinate is negative.
//  4. ErrEdgeEndpointOutOfBounds  — an edge references an out-of-range index.
//  5. ErrDuplicateEdge            — an ordered (a,b) pair repeats.
//
// Every sentinel is package-level and errors.Is-comparable, following the
// same convention the reference graph library uses in its own core,
// dfs, and builder packages: no ad hoc string-built errors at the call
// site, only %w-wrapped sentinels carrying positional context.
package validate
