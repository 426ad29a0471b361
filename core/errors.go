package core

import "errors"

// ErrInvariantViolated names a state the planar-input assumption rules
// out: a zero handle where a live neighbor is expected, a handle from a
// foreign arena, or similar. No function in this module returns it: the
// extraction engine performs no such checks, and non-planar input (edges
// that cross) is explicitly undefined behavior (see SPEC_FULL.md §1
// Non-goals) that may panic or produce malformed faces instead.
var ErrInvariantViolated = errors.New("core: internal invariant violated")
