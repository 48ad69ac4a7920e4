// Package pgd minimizes the robust Huber loss of a linear model over the
// L1 ball with fixed-step projected gradient descent.
//
// 🚀 What is projected gradient descent?
//
//	Plain gradient descent with one extra move per iteration: after each
//	step the iterate is projected back onto the feasible set, so the
//	constraint ‖x‖₁ ≤ N holds exactly on every iteration, not only at
//	termination. Each iteration performs:
//	  1. g ← Aᵀ·h'(A·x − y)        (huber.Gradient)
//	  2. x ← x − η·g               (fixed step, no line search)
//	  3. x ← Project(x, N)         (l1proj.Project)
//	  4. converged when ‖g‖₂ < ε   (pre-step gradient norm)
//
// ✨ Key features:
//   - Budgeted loop: reaching MaxIter is a valid terminal state, never an
//     error — the last feasible iterate is always returned
//   - Per-iteration numeric guard: a NaN/Inf gradient or iterate aborts
//     with ErrNotFinite instead of iterating on garbage
//   - Optional stricter convergence test (Options.StrictTest) on the
//     projected displacement, for callers wanting a stationarity proxy
//     tighter than the raw gradient norm
//
// ⚠️ Step-size precondition:
//
//	The step size is fixed by design. Convergence requires the caller to
//	pick Step ≤ 1/L where L = 2·σ_max(A)² bounds the gradient's Lipschitz
//	constant. The solver performs no adaptation and no line search; a too
//	large Step diverges and is reported as ErrNotFinite once the iterates
//	overflow, not corrected.
//
// ⚙️ Usage:
//
//	opts := pgd.DefaultOptions()
//	opts.Radius = 5
//	res, err := pgd.Solve(a, y, make([]float64, n), opts)
//	// res.X, res.Iterations, res.State
package pgd
