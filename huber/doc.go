// Package huber provides the Huber penalty, its derivative, and the
// robust-loss gradient oracle for linear models.
//
// 🚀 What is the Huber loss?
//
//	A penalty that behaves quadratically near zero and linearly in the
//	tails, so large residuals (outliers) stop dominating the fit:
//	  h(u)  = u²          if |u| ≤ 1
//	  h(u)  = 2|u| − 1    if |u| > 1
//	  h'(u) = 2u          if |u| ≤ 1
//	  h'(u) = 2·sign(u)   if |u| > 1
//
//	Value and slope agree at the seam |u| = 1, so h is convex with a
//	globally 2-Lipschitz gradient per residual component.
//
// The oracle evaluates a linear model A·x against observations y:
//
//	Loss(A, x, y)     = Σᵢ h((A·x − y)ᵢ)
//	Gradient(A, x, y) = Aᵀ · h'.(A·x − y)
//
// A is any gonum mat.Matrix; it is never mutated. Non-finite values in
// A, x, or y are a caller precondition violation: they propagate into
// the output rather than being sanitized here (downstream solvers detect
// them per iteration).
package huber
