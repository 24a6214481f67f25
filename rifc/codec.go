package rifc

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/rifc/alphabet"
	"github.com/katalvlaran/rifc/roots"
)

// StoreIndices folds indices into one coordinate, starting at origin:
//
//	z ← Root(z − key, index, base)
//
// An empty slice returns origin unchanged. Every index is checked against
// base before the first step, so a bad message fails without doing any work.
//
// Errors (all *StepError):
//   - ErrConfiguration: ErrBadBase, ErrBadIndex, ErrBaseTooSmall,
//     ErrBadEpsilon, ErrNonFiniteInput.
//   - ErrNumericOverflow: a step produced NaN or ±Inf.
func StoreIndices(origin, key complex128, indices []int, base int, opts *Options) (complex128, error) {
	o, err := opts.resolve()
	if err != nil {
		return 0, configErr(OpStore, err)
	}
	if err = checkBase(base); err != nil {
		return 0, configErr(OpStore, err)
	}
	if err = checkFinite(origin, key); err != nil {
		return 0, configErr(OpStore, err)
	}
	for pos, idx := range indices {
		if idx < 0 {
			return 0, configErr(OpStore, errors.Wrapf(ErrBadIndex, "index %d at position %d", idx, pos))
		}
		if idx >= base {
			return 0, configErr(OpStore, errors.Wrapf(ErrBaseTooSmall,
				"index %d at position %d needs base %d, have %d", idx, pos, alphabet.MinBaseForIndices(indices), base))
		}
	}

	z := origin
	for step, idx := range indices {
		w := z - key
		z = roots.Root(w, idx, base)
		if !roots.IsFinite(w) || !roots.IsFinite(z) {
			return 0, &StepError{Op: OpStore, Step: step, Kind: ErrNumericOverflow,
				Err: errors.Errorf("root of %v is %v", w, z)}
		}
		if o.Trace != nil {
			o.Trace(Event{Op: OpStore, Step: step, Index: idx, Z: z})
		}
	}

	return z, nil
}

// LoadIndices unfolds count indices from encoded, the inverse of
// StoreIndices for the same origin, key and base.
//
// Each step computes sz = encodedᵇ + key, recovers the branch that maps
// (sz − key) back onto the current coordinate, then moves to sz. With base
// 2 the branch is 1 when Re(z) < 0 and 0 otherwise, unless
// opts.ForceSearch is set. Indices are recovered newest first and written
// back to front, so the result is in store order.
//
// count == 0 returns an empty, non-nil slice. origin only matters when
// opts.OriginTolerance > 0.
//
// Errors (all *StepError, and the result is always nil):
//   - ErrConfiguration: ErrBadBase, ErrBadCount, ErrBadEpsilon,
//     ErrNonFiniteInput.
//   - ErrDecodeAmbiguity: roots.ErrNoBranch, ErrOriginMismatch.
//   - ErrNumericOverflow: zᵇ + key became NaN or ±Inf.
func LoadIndices(origin, key, encoded complex128, base, count int, opts *Options) ([]int, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, configErr(OpLoad, err)
	}
	if err = checkBase(base); err != nil {
		return nil, configErr(OpLoad, err)
	}
	if count < 0 {
		return nil, configErr(OpLoad, errors.Wrapf(ErrBadCount, "count %d", count))
	}
	if err = checkFinite(origin, key, encoded); err != nil {
		return nil, configErr(OpLoad, err)
	}

	fast := base == 2 && !o.ForceSearch
	out := make([]int, count)
	z := encoded
	for step := 0; step < count; step++ {
		sz := roots.PowInt(z, base) + key
		if !roots.IsFinite(sz) {
			return nil, &StepError{Op: OpLoad, Step: step, Kind: ErrNumericOverflow,
				Err: errors.Errorf("%v^%d + key is %v", z, base, sz)}
		}

		var idx int
		if fast {
			if real(z) < 0 {
				idx = 1
			}
		} else {
			idx, err = roots.Find(sz-key, z, base, o.Epsilon)
			if err != nil {
				return nil, &StepError{Op: OpLoad, Step: step, Kind: ErrDecodeAmbiguity,
					Err: errors.Wrapf(err, "coordinate %v", z)}
			}
		}

		out[count-1-step] = idx
		if o.Trace != nil {
			o.Trace(Event{Op: OpLoad, Step: step, Index: idx, Z: z})
		}
		z = sz
	}

	if o.OriginTolerance > 0 && !roots.EqualComplex(z, origin, o.OriginTolerance) {
		return nil, &StepError{Op: OpLoad, Step: count, Kind: ErrDecodeAmbiguity,
			Err: errors.Wrapf(ErrOriginMismatch, "landed on %v", z)}
	}

	return out, nil
}

// Store maps msg through alpha and folds it with StoreIndices.
// Unknown symbols are ErrConfiguration errors that also match
// alphabet.ErrUnknownSymbol.
func Store(alpha *alphabet.Alphabet, origin, key complex128, msg string, base int, opts *Options) (complex128, error) {
	if alpha == nil {
		return 0, configErr(OpStore, ErrNilAlphabet)
	}
	indices, err := alpha.Indices(msg)
	if err != nil {
		return 0, configErr(OpStore, err)
	}

	return StoreIndices(origin, key, indices, base, withSymbols(opts, alpha))
}

// Load unfolds count symbols with LoadIndices and maps them through alpha.
// A branch with no symbol in alpha is an ErrConfiguration error that also
// matches alphabet.ErrIndexOutOfRange.
func Load(alpha *alphabet.Alphabet, origin, key, encoded complex128, base, count int, opts *Options) (string, error) {
	if alpha == nil {
		return "", configErr(OpLoad, ErrNilAlphabet)
	}
	indices, err := LoadIndices(origin, key, encoded, base, count, withSymbols(opts, alpha))
	if err != nil {
		return "", err
	}
	msg, err := alpha.Symbols(indices)
	if err != nil {
		return "", configErr(OpLoad, err)
	}

	return msg, nil
}

// configErr tags err as a configuration failure raised before any step.
func configErr(op Op, err error) error {
	return &StepError{Op: op, Step: -1, Kind: ErrConfiguration, Err: err}
}

func checkBase(base int) error {
	if base < alphabet.MinBase {
		return errors.Wrapf(ErrBadBase, "base %d", base)
	}

	return nil
}

func checkFinite(zs ...complex128) error {
	for _, z := range zs {
		if !roots.IsFinite(z) {
			return errors.Wrapf(ErrNonFiniteInput, "%v", z)
		}
	}

	return nil
}

// withSymbols returns a copy of opts whose trace also carries the symbol
// for each index. Out-of-range indices are traced with Symbol 0.
func withSymbols(opts *Options, alpha *alphabet.Alphabet) *Options {
	if opts == nil || opts.Trace == nil {
		return opts
	}
	cp := *opts
	next := opts.Trace
	cp.Trace = func(ev Event) {
		if r, err := alpha.SymbolAt(ev.Index); err == nil {
			ev.Symbol = r
		}
		next(ev)
	}

	return &cp
}
