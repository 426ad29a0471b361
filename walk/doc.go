// Package walk implements the planar embedding primitives the cycle
// extractor builds closed walks out of: clockwise-most / counter-
// clockwise-most adjacent selection (SPEC_FULL.md §4.6), and the
// filament pruner that strips degree-1 dangling paths before each
// extraction pass (§4.5).
//
// ClockwiseMost and CounterClockwiseMost implement the Eberly minimal-
// cycle-basis turn-selection rule. The two routines are intentionally
// NOT symmetric in one respect: CounterClockwiseMost's convexity flag is
// recomputed with a consistent comparison operator after every
// replacement, while ClockwiseMost's recomputation uses a different
// operator depending on which branch triggered the replacement. This
// reads like a bug in the algorithm this was distilled from, and it
// probably is one, but the reference fixtures were generated against it,
// so both routines preserve it verbatim — see the comment at the
// ClockwiseMost recompute sites rather than "fixing" it quietly.
package walk
