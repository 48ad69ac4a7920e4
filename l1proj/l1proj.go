package l1proj

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Project returns the Euclidean projection of v onto the closed L1 ball
// of the given radius: the unique p minimizing ‖p − v‖₂ subject to
// ‖p‖₁ ≤ radius.
//
// Algorithm Outline:
//  1. If ‖v‖₁ ≤ radius, v is already feasible: return v itself (the same
//     backing slice, untouched).
//  2. Otherwise let s = sort(|v|, descending) and cssv[i] = (s[0]+…+s[i]) − radius.
//  3. Take ρ = the largest index i with s[i] − cssv[i]/(i+1) > 0.
//     The scan keeps the last qualifying index; a smaller index would
//     yield an infeasible or suboptimal threshold.
//  4. Threshold θ = cssv[ρ]/(ρ+1); output pⱼ = sign(vⱼ)·max(|vⱼ|−θ, 0).
//
// The feasible-path identity makes Project idempotent and exact on
// feasible inputs. On the general path the output satisfies
// ‖p‖₁ = radius up to floating-point roundoff.
//
// Complexity:
//
//	Time   = O(n log n) (dominated by the sort)
//	Memory = O(n)
//
// Errors:
//   - ErrNonPositiveRadius — radius ≤ 0.
//   - ErrEmptyVector       — len(v) == 0.
//   - ErrNotFinite         — v contains NaN or ±Inf.
func Project(v []float64, radius float64) ([]float64, error) {
	if radius <= 0 {
		return nil, ErrNonPositiveRadius
	}
	if len(v) == 0 {
		return nil, ErrEmptyVector
	}

	// One pass for both the finiteness guard and the L1 norm.
	l1 := 0.0
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNotFinite
		}
		l1 += math.Abs(x)
	}
	if l1 <= radius {
		// Fast path: already feasible, no perturbation.
		return v, nil
	}

	n := len(v)

	// s holds |v| sorted descending.
	s := make([]float64, n)
	for i, x := range v {
		s[i] = math.Abs(x)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))

	// cssv[i] = cumulative sum of s up to i, shifted by the radius.
	cssv := make([]float64, n)
	floats.CumSum(cssv, s)
	for i := range cssv {
		cssv[i] -= radius
	}

	// The largest qualifying index wins. Index 0 always qualifies here
	// because ‖v‖₁ > radius implies s[0] − (s[0]−radius) = radius > 0.
	rho := 0
	for i := 1; i < n; i++ {
		if s[i]-cssv[i]/float64(i+1) > 0 {
			rho = i
		}
	}
	theta := cssv[rho] / float64(rho+1)

	out := make([]float64, n)
	for j, x := range v {
		m := math.Abs(x) - theta
		if m > 0 {
			out[j] = math.Copysign(m, x)
		}
	}

	return out, nil
}

// Dist returns the Euclidean distance from v to the closed L1 ball of the
// given radius. Feasible vectors are at distance exactly 0.
//
// Errors: same as Project.
func Dist(v []float64, radius float64) (float64, error) {
	p, err := Project(v, radius)
	if err != nil {
		return 0, err
	}
	if &p[0] == &v[0] {
		// Fast-path identity: v itself is feasible.
		return 0, nil
	}

	return floats.Distance(v, p, 2), nil
}
