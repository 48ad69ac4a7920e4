// Package huber: sentinel error set.
package huber

import "errors"

var (
	// ErrNilOperator is returned when the design operator A is nil.
	ErrNilOperator = errors.New("huber: design operator is nil")

	// ErrDimensionMismatch is returned when the dimensions of A (m×n),
	// x (n) and y (m) are inconsistent. Returned wrapped with the actual
	// sizes; match with errors.Is.
	ErrDimensionMismatch = errors.New("huber: dimension mismatch")
)
