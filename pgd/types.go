// Package pgd: options, terminal states, and sentinel errors.
package pgd

import "errors"

// Default solver parameters. DefaultOptions MUST reflect these.
const (
	// DefaultStep is a conservative fixed step size; callers fitting
	// operators with large spectral norm must shrink it (see doc.go).
	DefaultStep = 0.01

	// DefaultRadius is the L1-ball radius.
	DefaultRadius = 1.0

	// DefaultTol is the convergence threshold on ‖g‖₂.
	DefaultTol = 1e-6

	// DefaultMaxIter is the iteration budget.
	DefaultMaxIter = 1000
)

var (
	// ErrBadOptions is returned when an option violates its invariant
	// (Step ≤ 0, Radius ≤ 0, Tol < 0, MaxIter < 0). Returned wrapped
	// with the offending field; match with errors.Is.
	ErrBadOptions = errors.New("pgd: invalid options")

	// ErrNilOperator is returned when the design operator A is nil.
	ErrNilOperator = errors.New("pgd: design operator is nil")

	// ErrDimensionMismatch is returned when A, y and x0 disagree in shape.
	ErrDimensionMismatch = errors.New("pgd: dimension mismatch")

	// ErrNotFinite is returned when the gradient or the iterate turns
	// NaN/Inf mid-solve; the error names the iteration. Typical causes:
	// non-finite inputs or a step size beyond the Lipschitz bound.
	ErrNotFinite = errors.New("pgd: non-finite value encountered")
)

// State is the terminal state of a solve.
type State int

const (
	// Running is the in-flight state; it never appears in a Result.
	Running State = iota

	// Converged means the test ‖g‖₂ < Tol passed (plus the projected
	// displacement test when Options.StrictTest is set).
	Converged

	// BudgetExhausted means MaxIter iterations ran without the
	// convergence test passing. Not an error: the final iterate is
	// feasible and returned.
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

// Options configures a projected-gradient solve.
//
// Fields:
//   - Step    — fixed step size η > 0 (no line search; see the
//     step-size precondition in doc.go).
//   - Radius  — L1-ball radius N > 0.
//   - Tol     — convergence threshold ε ≥ 0 on the pre-step ‖g‖₂.
//   - MaxIter — iteration budget K ≥ 0.
//   - StrictTest — when true, convergence additionally requires the
//     projected displacement ‖x_k − x_{k−1}‖₂ < Tol·Step. The plain
//     gradient-norm test can fire while the projection is still moving
//     the iterate; this guard is off by default for compatibility.
type Options struct {
	Step       float64
	Radius     float64
	Tol        float64
	MaxIter    int
	StrictTest bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Step:    DefaultStep,
		Radius:  DefaultRadius,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
	}
}

// Result reports the outcome of a solve.
type Result struct {
	// X is the final iterate. Feasible (‖X‖₁ ≤ Radius) whenever at
	// least one iteration ran; equal to x0 when MaxIter is 0.
	X []float64

	// Iterations is the number of iterations performed at termination.
	Iterations int

	// State is Converged or BudgetExhausted.
	State State
}
