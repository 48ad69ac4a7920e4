package pgd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsefit/huber"
	"github.com/katalvlaran/sparsefit/l1proj"
)

// Solve minimizes Σᵢ h((A·x − y)ᵢ) subject to ‖x‖₁ ≤ opts.Radius by
// fixed-step projected gradient descent started from x0.
//
// Per iteration k = 0 … MaxIter−1:
//  1. g ← huber.Gradient(A, x, y)
//  2. x ← x − Step·g
//  3. x ← l1proj.Project(x, Radius)
//  4. stop Converged when ‖g‖₂ < Tol (the PRE-step gradient norm — a
//     cheap proxy, not a projected-stationarity certificate; enable
//     Options.StrictTest for the tighter displacement test).
//
// If the budget runs out first the last (feasible) iterate is returned
// with State == BudgetExhausted and a nil error.
//
// x0 is copied; the caller's slice is never mutated. A is read-only.
//
// Errors:
//   - ErrBadOptions         — an option violates its invariant.
//   - ErrNilOperator        — A is nil.
//   - ErrDimensionMismatch  — shapes of A, y, x0 disagree.
//   - ErrNotFinite          — a NaN/Inf gradient or iterate appeared;
//     wrapped with the iteration index.
func Solve(a mat.Matrix, y, x0 []float64, opts Options) (Result, error) {
	if err := validate(a, y, x0, opts); err != nil {
		return Result{}, err
	}

	x := append([]float64(nil), x0...)
	prev := make([]float64, len(x))

	for k := 0; k < opts.MaxIter; k++ {
		g, err := huber.Gradient(a, x, y)
		if err != nil {
			// Dimensions were validated at entry; surface defensively.
			return Result{}, fmt.Errorf("pgd: iteration %d: %w", k, err)
		}
		if !allFinite(g) {
			return Result{}, fmt.Errorf("gradient at iteration %d: %w", k, ErrNotFinite)
		}
		gnorm := floats.Norm(g, 2)

		copy(prev, x)
		floats.AddScaled(x, -opts.Step, g)
		if !allFinite(x) {
			return Result{}, fmt.Errorf("iterate at iteration %d: %w", k, ErrNotFinite)
		}
		x, err = l1proj.Project(x, opts.Radius)
		if err != nil {
			return Result{}, fmt.Errorf("pgd: iteration %d: %w", k, err)
		}

		if gnorm < opts.Tol {
			if opts.StrictTest && floats.Distance(x, prev, 2) >= opts.Tol*opts.Step {
				continue
			}

			return Result{X: x, Iterations: k + 1, State: Converged}, nil
		}
	}

	return Result{X: x, Iterations: opts.MaxIter, State: BudgetExhausted}, nil
}

// validate performs the fail-fast entry checks.
func validate(a mat.Matrix, y, x0 []float64, opts Options) error {
	switch {
	case opts.Step <= 0:
		return fmt.Errorf("Step=%g must be positive: %w", opts.Step, ErrBadOptions)
	case opts.Radius <= 0:
		return fmt.Errorf("Radius=%g must be positive: %w", opts.Radius, ErrBadOptions)
	case opts.Tol < 0:
		return fmt.Errorf("Tol=%g must be non-negative: %w", opts.Tol, ErrBadOptions)
	case opts.MaxIter < 0:
		return fmt.Errorf("MaxIter=%d must be non-negative: %w", opts.MaxIter, ErrBadOptions)
	}
	if a == nil {
		return ErrNilOperator
	}
	m, n := a.Dims()
	if len(x0) != n || len(y) != m {
		return fmt.Errorf("operator is %d×%d, len(x0)=%d, len(y)=%d: %w",
			m, n, len(x0), len(y), ErrDimensionMismatch)
	}

	return nil
}

// allFinite reports whether every element is neither NaN nor ±Inf.
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
