package roots

import (
	"math"
	"math/cmplx"
)

// twoPi is one full turn in radians.
const twoPi = 2 * math.Pi

// Root returns the branch-th of the base distinct base-th roots of w.
//
// With w = L·e^(iA), A = Phase(w) ∈ (-π, π]:
//
//	radius = L^(1/base)
//	angle  = A/base + branch·2π/base
//
// As branch runs over [0, base) every root is visited exactly once. Root is
// pure and never fails; base = 1 returns w itself (up to rounding), and
// branch values outside [0, base) wrap around the circle. A negative-zero
// imaginary part counts as +0, so the negative real axis has angle π.
func Root(w complex128, branch, base int) complex128 {
	if imag(w) == 0 {
		w = complex(real(w), 0)
	}
	b := float64(base)
	angle := cmplx.Phase(w)/b + (twoPi/b)*float64(branch)
	radius := math.Pow(cmplx.Abs(w), 1.0/b)

	return complex(math.Cos(angle)*radius, math.Sin(angle)*radius)
}

// Find searches the branches of w, in ascending order, for the one whose
// root equals target within eps on both the real and imaginary axis.
//
// It returns the lowest matching branch. When nothing matches, Find returns
// ErrNoBranch; it never falls back to branch 0.
//
// Errors:
//   - ErrBadBase    : base < 1.
//   - ErrBadEpsilon : eps is NaN, ±Inf or ≤ 0.
//   - ErrNoBranch   : no branch within eps.
//
// Complexity: O(base).
func Find(w, target complex128, base int, eps float64) (int, error) {
	if base < 1 {
		return 0, ErrBadBase
	}
	if !(eps > 0) || math.IsInf(eps, 1) {
		return 0, ErrBadEpsilon
	}

	for branch := 0; branch < base; branch++ {
		if EqualComplex(Root(w, branch, base), target, eps) {
			return branch, nil
		}
	}

	return 0, ErrNoBranch
}
