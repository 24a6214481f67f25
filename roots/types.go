package roots

import "errors"

// Sentinel errors for root searches.
var (
	// ErrNoBranch indicates that no branch of the candidate reproduces the
	// target within the requested tolerance.
	ErrNoBranch = errors.New("roots: no branch matches target within tolerance")

	// ErrBadBase indicates a branch count below 1.
	ErrBadBase = errors.New("roots: base must be >= 1")

	// ErrBadEpsilon indicates a tolerance that is not a finite value > 0.
	ErrBadEpsilon = errors.New("roots: epsilon must be finite and > 0")
)
