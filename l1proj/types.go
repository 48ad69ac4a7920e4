// Package l1proj: sentinel error set.
// All public functions return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ...)); callers match with errors.Is.
package l1proj

import "errors"

var (
	// ErrNonPositiveRadius is returned when the ball radius is zero or
	// negative. The L1 ball of non-positive radius is empty or a single
	// point by convention we refuse; the radius is never silently clamped.
	ErrNonPositiveRadius = errors.New("l1proj: radius must be positive")

	// ErrEmptyVector is returned when the input vector has no elements.
	ErrEmptyVector = errors.New("l1proj: input vector must be non-empty")

	// ErrNotFinite is returned when the input contains NaN or ±Inf; the
	// projection of a non-finite point is undefined.
	ErrNotFinite = errors.New("l1proj: input contains NaN or Inf")
)
