package rifc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Error kinds. Every error returned by this package matches exactly one of
// them under errors.Is, in addition to its concrete cause.
var (
	// ErrConfiguration covers bad bases, counts, tolerances, non-finite
	// inputs and symbols that the alphabet or base cannot carry.
	ErrConfiguration = errors.New("rifc: configuration error")

	// ErrDecodeAmbiguity means no root branch reproduced the current
	// coordinate within tolerance; key, origin, base or epsilon do not
	// match the Store call.
	ErrDecodeAmbiguity = errors.New("rifc: decode ambiguity")

	// ErrNumericOverflow means an intermediate coordinate became NaN or ±Inf.
	ErrNumericOverflow = errors.New("rifc: numeric overflow")
)

// Concrete causes, reported together with their kind.
var (
	// ErrBadBase indicates a base below 2.
	ErrBadBase = errors.New("rifc: base must be >= 2")

	// ErrBaseTooSmall indicates a symbol index >= base.
	ErrBaseTooSmall = errors.New("rifc: base too small for symbol")

	// ErrBaseExceedsAlphabet indicates a base larger than the alphabet, so
	// some branches would have no symbol to decode to.
	ErrBaseExceedsAlphabet = errors.New("rifc: base exceeds alphabet size")

	// ErrBadIndex indicates a negative symbol index.
	ErrBadIndex = errors.New("rifc: negative symbol index")

	// ErrBadCount indicates a negative symbol count.
	ErrBadCount = errors.New("rifc: count must be >= 0")

	// ErrBadEpsilon indicates a tolerance that is negative, NaN or infinite.
	ErrBadEpsilon = errors.New("rifc: epsilon must be finite and > 0")

	// ErrNilAlphabet indicates a nil alphabet.
	ErrNilAlphabet = errors.New("rifc: alphabet is nil")

	// ErrNonFiniteInput indicates a key, origin or encoded coordinate with a
	// NaN or infinite component.
	ErrNonFiniteInput = errors.New("rifc: non-finite input coordinate")

	// ErrOriginMismatch indicates that Load unfolded every symbol but did
	// not land back on the origin (only checked when OriginTolerance > 0).
	ErrOriginMismatch = errors.New("rifc: unfolded coordinate does not return to origin")
)

// DefaultEpsilon is the per-axis tolerance used by the branch search.
const DefaultEpsilon = 1e-4

// Options tunes Store and Load. The zero value is usable: Epsilon 0 means
// DefaultEpsilon.
//
// Fields:
//   - Epsilon        : per-axis tolerance for the branch search (base > 2
//     or ForceSearch). Must be > 0 and finite once defaulted.
//   - ForceSearch    : disable the base-2 sign shortcut and always search.
//   - OriginTolerance: when > 0, Load also checks that unfolding all count
//     symbols lands within this per-axis distance of the origin, and
//     reports ErrDecodeAmbiguity otherwise. 0 disables the check.
//   - Trace          : optional per-step sink; nil disables tracing.
type Options struct {
	Epsilon         float64
	ForceSearch     bool
	OriginTolerance float64
	Trace           TraceFunc
}

// DefaultOptions returns Options{Epsilon: DefaultEpsilon}.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// resolve fills defaults and validates; a nil receiver yields the defaults.
func (o *Options) resolve() (Options, error) {
	opts := DefaultOptions()
	if o != nil {
		opts = *o
	}
	if opts.Epsilon == 0 {
		opts.Epsilon = DefaultEpsilon
	}
	if !(opts.Epsilon > 0) || math.IsInf(opts.Epsilon, 1) {
		return Options{}, ErrBadEpsilon
	}
	if !(opts.OriginTolerance >= 0) || math.IsInf(opts.OriginTolerance, 1) {
		return Options{}, ErrBadEpsilon
	}

	return opts, nil
}

// Op names the direction of a codec step, or construction.
type Op string

const (
	// OpStore marks encoder steps.
	OpStore Op = "store"
	// OpLoad marks decoder steps.
	OpLoad Op = "load"
	// OpNew marks Codec construction failures.
	OpNew Op = "new"
)

// Event is one traced codec step.
//
// For OpStore, Z is the coordinate after folding in the symbol. For OpLoad,
// Z is the coordinate the symbol was read from, before the forward map.
// Step counts from 0 in execution order, so load steps run from the last
// stored symbol to the first. Symbol is 0 when no alphabet is involved
// (StoreIndices / LoadIndices).
type Event struct {
	Op     Op
	Step   int
	Index  int
	Symbol rune
	Z      complex128
}

// TraceFunc receives codec steps. It is purely diagnostic: nothing it does
// feeds back into the algorithm.
type TraceFunc func(Event)

// StepError reports a failed Store or Load. It matches its Kind and its
// cause under errors.Is.
type StepError struct {
	Op   Op
	Step int // -1 when the failure precedes the first step
	Kind error
	Err  error
}

// Error implements error.
func (e *StepError) Error() string {
	var sb strings.Builder
	sb.WriteString("rifc: ")
	sb.WriteString(string(e.Op))
	if e.Step >= 0 {
		sb.WriteString(" step ")
		sb.WriteString(strconv.Itoa(e.Step))
	}
	sb.WriteString(": ")
	sb.WriteString(strings.TrimPrefix(e.Kind.Error(), "rifc: "))
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap exposes both the kind and the cause.
func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
