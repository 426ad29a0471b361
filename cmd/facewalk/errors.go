package main

import (
	"errors"

	"github.com/katalvlaran/facewalk/validate"
)

// exitError carries a process exit code alongside the error cobra prints,
// so main can give each validate failure its own exit code without cobra
// itself knowing about validate's sentinels. Bad arguments, I/O failures
// and GraphML parse errors all exit with 1.
type exitError struct {
	err  error
	code int
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

// exitCodeFor maps a validate sentinel to a stable process exit code.
// Errors outside validate's set (I/O, GraphML parsing) fall through to 1.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, validate.ErrGraphEmpty):
		return 10
	case errors.Is(err, validate.ErrVerticesSamePosition):
		return 11
	case errors.Is(err, validate.ErrInvalidCoordinateSystem):
		return 12
	case errors.Is(err, validate.ErrEdgeEndpointOutOfBounds):
		return 13
	case errors.Is(err, validate.ErrDuplicateEdge):
		return 14
	default:
		return 1
	}
}
