package model

import "errors"

// Sentinel errors for precondition violations in the area model. They are
// always wrapped with context via fmt.Errorf("...: %w", Err...) so callers
// can branch with errors.Is while still seeing the offending values.
var (
	// ErrInvalidArgument indicates a bad input value, such as a panel
	// coverage of zero or an unparseable dimension string.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidGeometry indicates a shape that cannot exist: a negative
	// triangle base, a non-positive pitch run, or an inner triangle larger
	// than the outer one in a difference operation.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrPitchMismatch indicates a triangle difference between gables whose
	// pitches are not equal within tolerance.
	ErrPitchMismatch = errors.New("pitch mismatch")
)
