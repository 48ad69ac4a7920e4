package admm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solve minimizes f(w̃) + g(w) subject to w̃ = w over length-n vectors,
// by scaled-dual consensus ADMM. Both primal variables and the dual λ
// start at zero.
//
// Per iteration k = 0 … MaxIter−1:
//  1. w̃ ← f.Prox(w − λ/ρ, ρ)
//  2. w  ← g.Prox(w̃ + λ/ρ, ρ)
//  3. λ  ← λ + ρ·(w̃ − w)
//  4. record ‖w − w̃‖₂; stop Converged when it drops below Tol.
//
// Running out of budget returns the last w with State == BudgetExhausted
// and a nil error. A sub-solver error, wrong-length result, or
// non-finite update aborts immediately with a *SubproblemError; the loop
// never continues on a stale or undefined iterate.
//
// Errors:
//   - ErrBadOptions, ErrBadDimension, ErrNilProx — entry validation.
//   - *SubproblemError — a block broke the ProxSolver contract; its
//     cause (sub-solver error, ErrProxDimension, ErrNotFinite) is
//     reachable through errors.Is / errors.As.
func Solve(f, g ProxSolver, n int, opts Options) (Result, error) {
	if err := validate(f, g, n, opts); err != nil {
		return Result{}, err
	}

	var (
		wt  []float64 // w̃, the f-block variable; set by the first update
		w   = make([]float64, n)
		lam = make([]float64, n)
		c   = make([]float64, n) // proximal center buffer
		res = make([]float64, 0, opts.MaxIter)
		rho = opts.Rho
	)

	for k := 0; k < opts.MaxIter; k++ {
		// w̃-update: center is w − λ/ρ.
		for i := range c {
			c[i] = w[i] - lam[i]/rho
		}
		next, err := runProx(f, BlockF, k, c, rho, n)
		if err != nil {
			return Result{}, err
		}
		wt = next

		// w-update: center is w̃ + λ/ρ.
		for i := range c {
			c[i] = wt[i] + lam[i]/rho
		}
		next, err = runProx(g, BlockG, k, c, rho, n)
		if err != nil {
			return Result{}, err
		}
		w = next

		// Dual ascent on the consensus gap.
		for i := range lam {
			lam[i] += rho * (wt[i] - w[i])
		}

		r := floats.Distance(w, wt, 2)
		res = append(res, r)
		if r < opts.Tol {
			return Result{W: w, Residuals: res, Iterations: k + 1, State: Converged}, nil
		}
	}

	return Result{W: w, Residuals: res, Iterations: opts.MaxIter, State: BudgetExhausted}, nil
}

// runProx invokes one block's sub-solver and enforces the ProxSolver
// contract (no error, correct length, finite values).
func runProx(p ProxSolver, b Block, k int, c []float64, rho float64, n int) ([]float64, error) {
	u, err := p.Prox(c, rho)
	if err != nil {
		return nil, &SubproblemError{Block: b, Iter: k, Err: err}
	}
	if len(u) != n {
		return nil, &SubproblemError{Block: b, Iter: k,
			Err: fmt.Errorf("got length %d, want %d: %w", len(u), n, ErrProxDimension)}
	}
	for _, x := range u {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &SubproblemError{Block: b, Iter: k, Err: ErrNotFinite}
		}
	}

	return u, nil
}

// validate performs the fail-fast entry checks.
func validate(f, g ProxSolver, n int, opts Options) error {
	switch {
	case opts.Rho <= 0:
		return fmt.Errorf("Rho=%g must be positive: %w", opts.Rho, ErrBadOptions)
	case opts.Tol < 0:
		return fmt.Errorf("Tol=%g must be non-negative: %w", opts.Tol, ErrBadOptions)
	case opts.MaxIter < 0:
		return fmt.Errorf("MaxIter=%d must be non-negative: %w", opts.MaxIter, ErrBadOptions)
	}
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrBadDimension)
	}
	if f == nil || g == nil {
		return ErrNilProx
	}

	return nil
}
