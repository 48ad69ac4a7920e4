// Package admm implements two-block consensus ADMM (Alternating Direction
// Method of Multipliers) with scaled dual updates.
//
// 🚀 What is consensus ADMM?
//
//	A splitting method for minimize f(w̃) + g(w) subject to w̃ = w. Each
//	iteration solves two independent proximal subproblems and nudges a
//	dual variable λ toward agreement:
//	  1. w̃ ← argmin_u f(u) + (ρ/2)‖u − (w − λ/ρ)‖₂²
//	  2. w  ← argmin_u g(u) + (ρ/2)‖u − (w̃ + λ/ρ)‖₂²
//	  3. λ  ← λ + ρ·(w̃ − w)
//	  4. stop when the consensus residual ‖w − w̃‖₂ drops below Tol
//
//	Splitting shines when f and g are individually easy: a least-squares
//	data term and an L1 sparsity term give Lasso-style sparse recovery
//	with every subproblem available in closed form.
//
// ✨ Key features:
//   - The sub-solvers are an injected capability (ProxSolver), so a
//     closed-form prox, an iterative inner solver, or anything honoring
//     the proximal contract can serve either block
//   - Residual history is recorded per iteration and returned in the
//     Result — no package-level state
//   - A failing sub-solver aborts the loop with a SubproblemError naming
//     the block and iteration; the loop never continues on a stale iterate
//   - Shipped closed-form proxes: Quadratic (Cholesky), LeastSquares
//     (regularized normal equations), L1Norm (soft threshold)
//
// ⚙️ Usage (sparse recovery, minimize ‖Aw−y‖₂² + γ‖w‖₁):
//
//	ls, err := admm.NewLeastSquares(a, y)
//	if err != nil { ... }
//	res, err := admm.Solve(ls, admm.NewL1Norm(0.5), n, admm.DefaultOptions())
//	// res.W, res.Residuals, res.State
//
// The penalty ρ is fixed for the whole solve; there is no adaptive
// penalty scheme. Convergence speed depends on ρ, the termination
// guarantee does not (for closed convex f, g with a saddle point).
package admm
