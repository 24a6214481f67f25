package roots

import "math"

// Equal reports whether |a-b| < eps.
func Equal(a, b, eps float64) bool {
	return math.Abs(b-a) < eps
}

// EqualComplex compares a and b axis by axis: both the real and the
// imaginary difference must be below eps. This is a box test, not a disc
// test.
func EqualComplex(a, b complex128, eps float64) bool {
	return Equal(real(a), real(b), eps) && Equal(imag(a), imag(b), eps)
}

// IsFinite reports whether neither component of z is NaN or ±Inf.
func IsFinite(z complex128) bool {
	re, im := real(z), imag(z)

	return !math.IsNaN(re) && !math.IsNaN(im) &&
		!math.IsInf(re, 0) && !math.IsInf(im, 0)
}

// PowInt returns z^n by binary exponentiation over complex multiplication.
// It avoids the exp/log round trip of cmplx.Pow, which keeps the forward
// map z ↦ z^n as close as possible to the inverse of Root.
// Negative n yields 1/z^|n|; n == 0 yields 1.
func PowInt(z complex128, n int) complex128 {
	if n < 0 {
		return 1 / PowInt(z, -n)
	}

	result := complex(1, 0)
	for base := z; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
	}

	return result
}
