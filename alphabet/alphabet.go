package alphabet

import (
	"strings"

	"github.com/pkg/errors"
)

// Alphabet is an immutable ordered set of symbols.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an alphabet from the runes of symbols, in order.
//
// Errors: ErrEmpty, ErrDuplicateSymbol.
func New(symbols string) (*Alphabet, error) {
	rs := []rune(symbols)
	if len(rs) == 0 {
		return nil, ErrEmpty
	}

	index := make(map[rune]int, len(rs))
	for i, r := range rs {
		if prev, ok := index[r]; ok {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "symbol %q at %d and %d", r, prev, i)
		}
		index[r] = i
	}

	return &Alphabet{symbols: rs, index: index}, nil
}

// MustNew is New for compile-time constant symbol sets; it panics on error.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Hex returns the "0123456789ABCDEF" alphabet.
func Hex() *Alphabet { return MustNew(HexSymbols) }

// Binary returns the "01" alphabet.
func Binary() *Alphabet { return MustNew(BinarySymbols) }

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// String returns the symbols in index order.
func (a *Alphabet) String() string { return string(a.symbols) }

// IndexOf returns the position of r. Unknown runes are an error, never 0.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSymbol, "symbol %q", r)
	}

	return i, nil
}

// SymbolAt returns the symbol at index i.
func (a *Alphabet) SymbolAt(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", i, len(a.symbols))
	}

	return a.symbols[i], nil
}

// Indices maps every symbol of msg to its index.
func (a *Alphabet) Indices(msg string) ([]int, error) {
	out := make([]int, 0, len(msg))
	pos := 0
	for _, r := range msg {
		i, err := a.IndexOf(r)
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", pos)
		}
		out = append(out, i)
		pos++
	}

	return out, nil
}

// Symbols maps indices back to a string.
func (a *Alphabet) Symbols(indices []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(indices))
	for pos, i := range indices {
		r, err := a.SymbolAt(i)
		if err != nil {
			return "", errors.Wrapf(err, "position %d", pos)
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// MinBaseFor returns one plus the largest index used by msg, floored at
// MinBase: the smallest base that can carry every symbol of msg.
func (a *Alphabet) MinBaseFor(msg string) (int, error) {
	indices, err := a.Indices(msg)
	if err != nil {
		return 0, err
	}

	return MinBaseForIndices(indices), nil
}

// MinBaseForIndices is MinBaseFor over already-mapped indices.
// Negative indices are ignored here; the codec rejects them separately.
func MinBaseForIndices(indices []int) int {
	base := MinBase
	for _, i := range indices {
		if i+1 > base {
			base = i + 1
		}
	}

	return base
}
