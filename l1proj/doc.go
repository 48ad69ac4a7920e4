// Package l1proj computes the exact Euclidean projection of a vector onto
// the closed L1 ball {x : ‖x‖₁ ≤ N}.
//
// 🚀 What is an L1-ball projection?
//
//	Given any point v, the projection is the unique feasible point closest
//	to v in Euclidean distance. It is the workhorse constraint step in:
//	  • Sparse signal recovery (compressed sensing)
//	  • Lasso-style regression solved by projected gradient methods
//	  • Portfolio and resource allocation with budget constraints
//
// ✨ Key features:
//   - Exact sorting-based algorithm: O(n log n) time, O(n) extra memory
//   - Fast path: an already-feasible vector is returned untouched, with
//     no floating-point perturbation
//   - Deterministic tie-break: the soft-threshold index is always the
//     largest qualifying index, which is required for correctness
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsefit/l1proj"
//
//	p, err := l1proj.Project([]float64{4, -3, 2}, 5)
//	// p ≈ [2.667, -1.667, 0.667], ‖p‖₁ = 5
//
// Errors:
//   - ErrNonPositiveRadius — radius ≤ 0 is an invalid configuration
//   - ErrEmptyVector       — the input has no elements
//   - ErrNotFinite         — the input contains NaN or ±Inf
//
// A naive per-coordinate soft-threshold with a guessed threshold is NOT
// equivalent and is not implemented here; the threshold must be derived
// from the sorted magnitudes.
package l1proj
