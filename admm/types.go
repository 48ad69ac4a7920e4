// Package admm: options, states, blocks, and error types.
package admm

import (
	"errors"
	"fmt"
)

// Default solver parameters. DefaultOptions MUST reflect these.
const (
	// DefaultRho is the fixed consensus penalty.
	DefaultRho = 1.0

	// DefaultTol is the convergence threshold on ‖w − w̃‖₂.
	DefaultTol = 1e-6

	// DefaultMaxIter is the iteration budget.
	DefaultMaxIter = 1000
)

var (
	// ErrBadOptions is returned when an option violates its invariant
	// (Rho ≤ 0, Tol < 0, MaxIter < 0). Wrapped with the offending field.
	ErrBadOptions = errors.New("admm: invalid options")

	// ErrBadDimension is returned when the consensus dimension n < 1.
	ErrBadDimension = errors.New("admm: dimension must be at least 1")

	// ErrNilProx is returned when either block's ProxSolver is nil.
	ErrNilProx = errors.New("admm: nil proximal sub-solver")

	// ErrProxDimension is returned (inside a SubproblemError) when a
	// sub-solver hands back a vector of the wrong length.
	ErrProxDimension = errors.New("admm: sub-solver returned wrong dimension")

	// ErrNotFinite is returned (inside a SubproblemError) when a block
	// update produces NaN/Inf; the loop never iterates on such values.
	ErrNotFinite = errors.New("admm: non-finite iterate")

	// ErrNotPosDef is returned by the Quadratic prox when P + ρI fails
	// the Cholesky factorization (P is not positive semi-definite).
	ErrNotPosDef = errors.New("admm: proximal system is not positive definite")

	// ErrNilOperator is returned by a sub-solver constructor given a nil
	// matrix operand.
	ErrNilOperator = errors.New("admm: nil operator")

	// ErrDimensionMismatch is returned when a sub-solver's operands, or
	// the proximal center it is handed, disagree in shape.
	ErrDimensionMismatch = errors.New("admm: dimension mismatch")

	// ErrNegativeWeight is returned by the L1Norm prox for γ < 0 (a
	// negative L1 weight is not a convex objective).
	ErrNegativeWeight = errors.New("admm: negative L1 weight")
)

// ProxSolver is the capability contract both ADMM blocks delegate to:
// given the proximal center c and the fixed penalty ρ, return
//
//	argmin_u objective(u) + (ρ/2)‖u − c‖₂²
//
// for the solver's own convex objective. The returned slice must be a
// fresh vector of len(c); implementations must not retain or mutate c.
// An error aborts the ADMM loop with a SubproblemError.
type ProxSolver interface {
	Prox(c []float64, rho float64) ([]float64, error)
}

// Block identifies which half of the splitting a diagnostic refers to.
type Block int

const (
	// BlockF is the w̃-update (the f objective).
	BlockF Block = iota

	// BlockG is the w-update (the g objective).
	BlockG
)

// String implements fmt.Stringer.
func (b Block) String() string {
	switch b {
	case BlockF:
		return "f"
	case BlockG:
		return "g"
	default:
		return "unknown"
	}
}

// SubproblemError reports that a block's sub-solver broke its contract:
// it failed outright, returned the wrong dimension, or produced a
// non-finite iterate. The zero-based Iter names the iteration.
type SubproblemError struct {
	Block Block
	Iter  int
	Err   error
}

// Error implements error.
func (e *SubproblemError) Error() string {
	return fmt.Sprintf("admm: %s-block sub-solver failed at iteration %d: %v",
		e.Block, e.Iter, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *SubproblemError) Unwrap() error { return e.Err }

// State is the terminal state of a solve.
type State int

const (
	// Running is the in-flight state; it never appears in a Result.
	Running State = iota

	// Converged means the consensus residual dropped below Tol.
	Converged

	// BudgetExhausted means MaxIter iterations ran without consensus.
	// Not an error: the final w and full residual history are returned.
	BudgetExhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case BudgetExhausted:
		return "BudgetExhausted"
	default:
		return "Unknown"
	}
}

// Options configures an ADMM solve.
//
// Fields:
//   - Rho     — consensus penalty ρ > 0, fixed for the whole solve.
//   - Tol     — convergence threshold ε ≥ 0 on ‖w − w̃‖₂.
//   - MaxIter — iteration budget K ≥ 0.
type Options struct {
	Rho     float64
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Rho:     DefaultRho,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
	}
}

// Result reports the outcome of a solve.
type Result struct {
	// W is the final consensus iterate (the g-block variable).
	W []float64

	// Residuals holds ‖w − w̃‖₂ for every completed iteration, in
	// order. Owned by the caller after return.
	Residuals []float64

	// Iterations is the number of completed iterations.
	Iterations int

	// State is Converged or BudgetExhausted.
	State State
}
