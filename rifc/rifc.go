package rifc

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/rifc/alphabet"
)

// Codec bundles everything Store and Load must agree on: the alphabet, the
// secret key and origin, the base and the options. A Codec never changes
// after New and may be shared between goroutines, provided the trace sink
// (if any) is itself safe for concurrent use.
type Codec struct {
	alpha  *alphabet.Alphabet
	key    complex128
	origin complex128
	base   int
	opts   Options
}

// New validates and returns a Codec.
//
// Errors (ErrConfiguration): ErrNilAlphabet, ErrBadBase,
// ErrBaseExceedsAlphabet, ErrNonFiniteInput, ErrBadEpsilon.
func New(alpha *alphabet.Alphabet, key, origin complex128, base int, opts *Options) (*Codec, error) {
	if alpha == nil {
		return nil, configErr(OpNew, ErrNilAlphabet)
	}
	o, err := opts.resolve()
	if err != nil {
		return nil, configErr(OpNew, err)
	}
	if err = checkBase(base); err != nil {
		return nil, configErr(OpNew, err)
	}
	if base > alpha.Size() {
		return nil, configErr(OpNew, errors.Wrapf(ErrBaseExceedsAlphabet, "base %d, alphabet %q", base, alpha.String()))
	}
	if err = checkFinite(key, origin); err != nil {
		return nil, configErr(OpNew, err)
	}

	return &Codec{alpha: alpha, key: key, origin: origin, base: base, opts: o}, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *alphabet.Alphabet { return c.alpha }

// Base returns the branch count.
func (c *Codec) Base() int { return c.base }

// Store encodes msg.
func (c *Codec) Store(msg string) (complex128, error) {
	return Store(c.alpha, c.origin, c.key, msg, c.base, &c.opts)
}

// Load decodes count symbols from encoded.
func (c *Codec) Load(encoded complex128, count int) (string, error) {
	return Load(c.alpha, c.origin, c.key, encoded, c.base, count, &c.opts)
}

// RoundTrip stores msg, loads it back and reports whether it survived.
// A decode error is returned as is; a silent mismatch is ok == false with
// a nil error.
func (c *Codec) RoundTrip(msg string) (encoded complex128, ok bool, err error) {
	encoded, err = c.Store(msg)
	if err != nil {
		return 0, false, err
	}
	got, err := c.Load(encoded, len([]rune(msg)))
	if err != nil {
		return encoded, false, err
	}

	return encoded, got == msg, nil
}
