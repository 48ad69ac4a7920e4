package huber

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Value returns the Huber penalty h(u): quadratic for |u| ≤ 1, linear
// beyond, continuous in value and slope at the seam.
func Value(u float64) float64 {
	if a := math.Abs(u); a > 1 {
		return 2*a - 1
	}

	return u * u
}

// Deriv returns the derivative h'(u) of the Huber penalty. Deriv(0) = 0,
// so the saturated branch 2·sign(u) is consistent with the quadratic one
// at both the origin and the seam |u| = 1.
func Deriv(u float64) float64 {
	switch {
	case u > 1:
		return 2
	case u < -1:
		return -2
	default:
		return 2 * u
	}
}

// Residual returns r = A·x − y for an m×n operator A, a length-n
// parameter vector x, and a length-m observation vector y.
//
// Errors:
//   - ErrNilOperator       — A is nil.
//   - ErrDimensionMismatch — shapes of A, x, y disagree.
func Residual(a mat.Matrix, x, y []float64) ([]float64, error) {
	m, n, err := checkDims(a, x, y)
	if err != nil {
		return nil, err
	}

	var r mat.VecDense
	r.MulVec(a, mat.NewVecDense(n, x))
	out := r.RawVector().Data
	for i := 0; i < m; i++ {
		out[i] -= y[i]
	}

	return out, nil
}

// Loss returns the robust loss Σᵢ h((A·x − y)ᵢ).
//
// Errors: same as Residual.
func Loss(a mat.Matrix, x, y []float64) (float64, error) {
	r, err := Residual(a, x, y)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, u := range r {
		sum += Value(u)
	}

	return sum, nil
}

// Gradient returns the subgradient g = Aᵀ · h'.(A·x − y) of the robust
// loss with respect to x. The result is a fresh length-n slice; A, x
// and y are never mutated.
//
// Non-finite entries in the inputs propagate into g (caller
// precondition, not sanitized here).
//
// Errors: same as Residual.
func Gradient(a mat.Matrix, x, y []float64) ([]float64, error) {
	r, err := Residual(a, x, y)
	if err != nil {
		return nil, err
	}

	for i, u := range r {
		r[i] = Deriv(u)
	}

	var g mat.VecDense
	g.MulVec(a.T(), mat.NewVecDense(len(r), r))

	return g.RawVector().Data, nil
}

// checkDims validates the operator and vector shapes, returning (m, n).
func checkDims(a mat.Matrix, x, y []float64) (m, n int, err error) {
	if a == nil {
		return 0, 0, ErrNilOperator
	}
	m, n = a.Dims()
	if len(x) != n || len(y) != m {
		return 0, 0, fmt.Errorf("operator is %d×%d, len(x)=%d, len(y)=%d: %w",
			m, n, len(x), len(y), ErrDimensionMismatch)
	}

	return m, n, nil
}
