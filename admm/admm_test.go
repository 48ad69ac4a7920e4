package admm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/sparsefit/admm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// stubProx adapts a closure to the ProxSolver interface for fault
// injection in tests.
type stubProx struct {
	fn func(c []float64, rho float64) ([]float64, error)
}

func (s stubProx) Prox(c []float64, rho float64) ([]float64, error) {
	return s.fn(c, rho)
}

// identityProx returns the center unchanged (the prox of the zero
// objective).
var identityProx = stubProx{fn: func(c []float64, _ float64) ([]float64, error) {
	return append([]float64(nil), c...), nil
}}

// TestSolve_BadOptions covers the fail-fast validation table.
func TestSolve_BadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*admm.Options)
	}{
		{"zero rho", func(o *admm.Options) { o.Rho = 0 }},
		{"negative rho", func(o *admm.Options) { o.Rho = -1 }},
		{"negative tol", func(o *admm.Options) { o.Tol = -1e-9 }},
		{"negative budget", func(o *admm.Options) { o.MaxIter = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := admm.DefaultOptions()
			tc.mutate(&opts)
			_, err := admm.Solve(identityProx, identityProx, 2, opts)
			assert.ErrorIs(t, err, admm.ErrBadOptions)
		})
	}

	_, err := admm.Solve(identityProx, identityProx, 0, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrBadDimension)

	_, err = admm.Solve(nil, identityProx, 2, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNilProx)

	_, err = admm.Solve(identityProx, nil, 2, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNilProx)
}

// TestSolve_QuadraticConsensus splits two strongly convex quadratics and
// checks convergence to the known joint minimizer:
// f(u) = ½uᵀdiag(2,2)u − 2u₁, g(u) = ½uᵀdiag(4,2)u − 4u₂ have the joint
// optimality condition diag(6,4)·w = (2,4), i.e. w* = (1/3, 1).
func TestSolve_QuadraticConsensus(t *testing.T) {
	f, err := admm.NewQuadratic(mat.NewSymDense(2, []float64{2, 0, 0, 2}), []float64{-2, 0})
	require.NoError(t, err)
	g, err := admm.NewQuadratic(mat.NewSymDense(2, []float64{4, 0, 0, 2}), []float64{0, -4})
	require.NoError(t, err)

	opts := admm.DefaultOptions()
	opts.Tol = 1e-9

	res, err := admm.Solve(f, g, 2, opts)
	require.NoError(t, err)

	assert.Equal(t, admm.Converged, res.State)
	assert.Greater(t, res.Iterations, 0)
	assert.Less(t, res.Iterations, opts.MaxIter, "must converge well inside the budget")
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1}, res.W, 1e-7)

	// Residual bookkeeping: one entry per completed iteration, the last
	// one below the threshold.
	assert.Len(t, res.Residuals, res.Iterations)
	assert.Less(t, res.Residuals[len(res.Residuals)-1], opts.Tol)
}

// TestSolve_SparseRecovery runs the Lasso split on an identity design:
// minimize ‖w − y‖₂² + γ‖w‖₁ has the closed form wᵢ = soft(yᵢ, γ/2).
func TestSolve_SparseRecovery(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	y := []float64{3, -0.4, 1}

	f, err := admm.NewLeastSquares(a, y)
	require.NoError(t, err)
	g := admm.NewL1Norm(1)

	opts := admm.DefaultOptions()
	opts.Tol = 1e-8
	opts.MaxIter = 5000

	res, err := admm.Solve(f, g, 3, opts)
	require.NoError(t, err)

	assert.Equal(t, admm.Converged, res.State)
	// soft(3, 0.5)=2.5, soft(-0.4, 0.5)=0, soft(1, 0.5)=0.5
	assert.InDeltaSlice(t, []float64{2.5, 0, 0.5}, res.W, 1e-6)
	assert.Zero(t, res.W[1], "the small coefficient must be exactly thresholded out")
}

// TestSolve_BudgetExhausted verifies the budget terminal state: no error,
// full residual history, final w returned.
func TestSolve_BudgetExhausted(t *testing.T) {
	f, err := admm.NewQuadratic(mat.NewSymDense(1, []float64{2}), []float64{-2})
	require.NoError(t, err)
	g, err := admm.NewQuadratic(mat.NewSymDense(1, []float64{2}), []float64{2})
	require.NoError(t, err)

	opts := admm.DefaultOptions()
	opts.Tol = 0 // unreachable: ‖w−w̃‖ < 0 never holds
	opts.MaxIter = 25

	res, err := admm.Solve(f, g, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, admm.BudgetExhausted, res.State)
	assert.Equal(t, 25, res.Iterations)
	assert.Len(t, res.Residuals, 25)
}

// TestSolve_ZeroBudget verifies K = 0 returns the zero start point.
func TestSolve_ZeroBudget(t *testing.T) {
	opts := admm.DefaultOptions()
	opts.MaxIter = 0

	res, err := admm.Solve(identityProx, identityProx, 3, opts)
	require.NoError(t, err)
	assert.Equal(t, admm.BudgetExhausted, res.State)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, []float64{0, 0, 0}, res.W)
	assert.Empty(t, res.Residuals)
}

// TestSolve_SubproblemFailure verifies that a failing sub-solver aborts
// with a SubproblemError carrying the block, iteration, and cause.
func TestSolve_SubproblemFailure(t *testing.T) {
	cause := errors.New("inner solver blew up")
	failing := stubProx{fn: func([]float64, float64) ([]float64, error) {
		return nil, cause
	}}

	_, err := admm.Solve(identityProx, failing, 2, admm.DefaultOptions())
	require.Error(t, err)

	var sub *admm.SubproblemError
	require.ErrorAs(t, err, &sub)
	assert.Equal(t, admm.BlockG, sub.Block)
	assert.Zero(t, sub.Iter)
	assert.ErrorIs(t, err, cause, "the cause must stay reachable through Unwrap")
	assert.Contains(t, err.Error(), "g-block")

	// Same check for the f block.
	_, err = admm.Solve(failing, identityProx, 2, admm.DefaultOptions())
	require.ErrorAs(t, err, &sub)
	assert.Equal(t, admm.BlockF, sub.Block)
}

// TestSolve_ProxContractViolations verifies that wrong-length and
// non-finite sub-solver results are caught, never iterated on.
func TestSolve_ProxContractViolations(t *testing.T) {
	short := stubProx{fn: func([]float64, float64) ([]float64, error) {
		return []float64{1}, nil
	}}
	_, err := admm.Solve(short, identityProx, 3, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrProxDimension)

	poisoned := stubProx{fn: func(c []float64, _ float64) ([]float64, error) {
		out := make([]float64, len(c))
		out[0] = math.NaN()
		return out, nil
	}}
	_, err = admm.Solve(identityProx, poisoned, 3, admm.DefaultOptions())
	assert.ErrorIs(t, err, admm.ErrNotFinite)

	var sub *admm.SubproblemError
	require.ErrorAs(t, err, &sub)
	assert.Equal(t, admm.BlockG, sub.Block)
}

// TestStrings pins the diagnostic names used in error messages.
func TestStrings(t *testing.T) {
	assert.Equal(t, "f", admm.BlockF.String())
	assert.Equal(t, "g", admm.BlockG.String())
	assert.Equal(t, "unknown", admm.Block(9).String())

	assert.Equal(t, "Running", admm.Running.String())
	assert.Equal(t, "Converged", admm.Converged.String())
	assert.Equal(t, "BudgetExhausted", admm.BudgetExhausted.String())
	assert.Equal(t, "Unknown", admm.State(9).String())
}
