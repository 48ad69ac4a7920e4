// Package sparsefit is a small toolkit of constrained convex-optimization
// primitives for recovering sparse signals under an outlier-tolerant loss.
//
// 🚀 What is sparsefit?
//
//	A compact, deterministic library that brings together:
//		• Exact Euclidean projection onto the L1 ball (sorting-based, O(n log n))
//		• A robust Huber loss and its subgradient oracle for linear models
//		• A fixed-step projected-gradient solver over the L1 ball
//		• A two-block consensus ADMM loop with pluggable proximal sub-solvers
//
// ✨ Why choose sparsefit?
//
//   - Fail-fast contracts – every solver validates its inputs once at entry
//   - Sentinel errors – match failures with errors.Is, never parse strings
//   - No hidden state – residual histories and iteration counts live in results
//   - Built on gonum – design matrices are plain mat.Matrix operators
//
// Everything is organized under four subpackages:
//
//	l1proj/ — nearest point in the closed L1 ball ‖x‖₁ ≤ N
//	huber/  — Huber penalty, its derivative, and the gradient Aᵀh'(Ax−y)
//	pgd/    — projected gradient descent composing huber and l1proj
//	admm/   — scaled-dual consensus ADMM plus closed-form proximal solvers
//
// A typical sparse-recovery run projects each gradient step back onto the
// L1 ball:
//
//	res, err := pgd.Solve(A, y, x0, pgd.Options{
//	  Step: 0.05, Radius: 5, Tol: 1e-6, MaxIter: 1000,
//	})
//
// while the ADMM route splits the objective into two proximal blocks:
//
//	ls, _ := admm.NewLeastSquares(A, y)
//	res, err := admm.Solve(ls, admm.NewL1Norm(0.5), n, admm.DefaultOptions())
//
// See each subpackage's doc.go and example_test.go for full walkthroughs.
package sparsefit
