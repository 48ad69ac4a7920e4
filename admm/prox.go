package admm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Quadratic is the proximal solver for f(u) = ½uᵀPu + qᵀu. Its prox is
// the closed-form solution of the linear system (P + ρI)u = ρc − q,
// solved by Cholesky factorization.
//
// The factorization depends only on ρ, which ADMM fixes for a whole
// solve, so it is computed once and cached. The cache makes a Quadratic
// value single-solve, single-goroutine — matching the solver loop's own
// resource model.
type Quadratic struct {
	p mat.Symmetric
	q []float64

	chol   mat.Cholesky
	rho    float64
	cached bool
}

// NewQuadratic builds the prox for f(u) = ½uᵀPu + qᵀu. P must be
// positive semi-definite for f to be convex; this is checked lazily at
// the first Prox call (via the Cholesky of P + ρI).
//
// Errors:
//   - ErrNilOperator       — p is nil.
//   - ErrDimensionMismatch — len(q) differs from the order of P.
func NewQuadratic(p mat.Symmetric, q []float64) (*Quadratic, error) {
	if p == nil {
		return nil, ErrNilOperator
	}
	if n := p.SymmetricDim(); len(q) != n {
		return nil, fmt.Errorf("P is %d×%d, len(q)=%d: %w", n, n, len(q), ErrDimensionMismatch)
	}

	return &Quadratic{p: p, q: q}, nil
}

// Prox returns argmin_u ½uᵀPu + qᵀu + (ρ/2)‖u − c‖₂², i.e. the solution
// of (P + ρI)u = ρc − q.
func (s *Quadratic) Prox(c []float64, rho float64) ([]float64, error) {
	n := s.p.SymmetricDim()
	if len(c) != n {
		return nil, fmt.Errorf("center has length %d, want %d: %w", len(c), n, ErrDimensionMismatch)
	}
	if rho <= 0 {
		return nil, fmt.Errorf("rho=%g must be positive: %w", rho, ErrBadOptions)
	}

	if !s.cached || rho != s.rho {
		shifted := mat.NewSymDense(n, nil)
		shifted.CopySym(s.p)
		for i := 0; i < n; i++ {
			shifted.SetSym(i, i, shifted.At(i, i)+rho)
		}
		if !s.chol.Factorize(shifted) {
			return nil, ErrNotPosDef
		}
		s.rho, s.cached = rho, true
	}

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = rho*c[i] - s.q[i]
	}
	var u mat.VecDense
	if err := s.chol.SolveVecTo(&u, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("admm: quadratic prox solve: %w", err)
	}

	return u.RawVector().Data, nil
}

// LeastSquares is the proximal solver for the data-fidelity term
// f(u) = ‖Au − y‖₂². Its prox is the regularized least-squares solution
// (2AᵀA + ρI)u = 2Aᵀy + ρc. 2AᵀA and 2Aᵀy are precomputed at
// construction; the ρ-shifted Cholesky is cached like Quadratic's.
type LeastSquares struct {
	gram *mat.SymDense // 2AᵀA
	aty  []float64     // 2Aᵀy

	chol   mat.Cholesky
	rho    float64
	cached bool
}

// NewLeastSquares builds the prox for f(u) = ‖Au − y‖₂² with an m×n
// operator A and length-m observations y.
//
// Errors:
//   - ErrNilOperator       — a is nil.
//   - ErrDimensionMismatch — len(y) != m.
func NewLeastSquares(a mat.Matrix, y []float64) (*LeastSquares, error) {
	if a == nil {
		return nil, ErrNilOperator
	}
	m, n := a.Dims()
	if len(y) != m {
		return nil, fmt.Errorf("operator is %d×%d, len(y)=%d: %w", m, n, len(y), ErrDimensionMismatch)
	}

	gram := mat.NewSymDense(n, nil)
	gram.SymOuterK(2, a.T())

	var v mat.VecDense
	v.MulVec(a.T(), mat.NewVecDense(m, y))
	aty := v.RawVector().Data
	floats.Scale(2, aty)

	return &LeastSquares{gram: gram, aty: aty}, nil
}

// Prox returns argmin_u ‖Au − y‖₂² + (ρ/2)‖u − c‖₂², i.e. the solution
// of (2AᵀA + ρI)u = 2Aᵀy + ρc. The system is positive definite for any
// ρ > 0, even when A is rank-deficient.
func (s *LeastSquares) Prox(c []float64, rho float64) ([]float64, error) {
	n := s.gram.SymmetricDim()
	if len(c) != n {
		return nil, fmt.Errorf("center has length %d, want %d: %w", len(c), n, ErrDimensionMismatch)
	}
	if rho <= 0 {
		return nil, fmt.Errorf("rho=%g must be positive: %w", rho, ErrBadOptions)
	}

	if !s.cached || rho != s.rho {
		shifted := mat.NewSymDense(n, nil)
		shifted.CopySym(s.gram)
		for i := 0; i < n; i++ {
			shifted.SetSym(i, i, shifted.At(i, i)+rho)
		}
		if !s.chol.Factorize(shifted) {
			return nil, ErrNotPosDef
		}
		s.rho, s.cached = rho, true
	}

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = s.aty[i] + rho*c[i]
	}
	var u mat.VecDense
	if err := s.chol.SolveVecTo(&u, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("admm: least-squares prox solve: %w", err)
	}

	return u.RawVector().Data, nil
}

// L1Norm is the proximal solver for the sparsity term g(u) = γ‖u‖₁.
// Its prox is the element-wise soft threshold with parameter γ/ρ:
//
//	u*ᵢ = sign(cᵢ)·max(|cᵢ| − γ/ρ, 0)
//
// γ = 0 degenerates to the identity (no shrinkage).
type L1Norm struct {
	gamma float64
}

// NewL1Norm builds the prox for g(u) = γ‖u‖₁. A negative γ is rejected
// at the first Prox call with ErrNegativeWeight.
func NewL1Norm(gamma float64) *L1Norm {
	return &L1Norm{gamma: gamma}
}

// Prox returns argmin_u γ‖u‖₁ + (ρ/2)‖u − c‖₂² by soft thresholding.
func (s *L1Norm) Prox(c []float64, rho float64) ([]float64, error) {
	if s.gamma < 0 {
		return nil, fmt.Errorf("gamma=%g: %w", s.gamma, ErrNegativeWeight)
	}
	if rho <= 0 {
		return nil, fmt.Errorf("rho=%g must be positive: %w", rho, ErrBadOptions)
	}

	kappa := s.gamma / rho
	out := make([]float64, len(c))
	for i, x := range c {
		if m := math.Abs(x) - kappa; m > 0 {
			out[i] = math.Copysign(m, x)
		}
	}

	return out, nil
}
