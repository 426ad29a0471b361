// Package components decomposes an Arena into connected components via
// an iterative, explicit-stack depth-first search (SPEC_FULL.md §4.4).
//
// Each unvisited handle seeds a new component; a handle transitions
// Unvisited -> Discovered when pushed and Discovered -> Finished when
// popped, and is appended to its component at that point, so the
// returned component order is DFS post-order. All visited marks are
// reset to Unvisited before Find returns, leaving the Arena ready for
// the next pass (wedge detachment re-runs Find on a freshly cloned
// sub-arena region).
//
// Per Redesign Flag R1, the traversal here pushes the first unvisited
// neighbor it finds and otherwise finishes and pops the current frame —
// it does not reproduce an original implementation's desynchronized
// neighbor-index advance, since R1 calls for exactly this clarified,
// unambiguous form.
package components
