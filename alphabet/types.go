package alphabet

import "errors"

// Sentinel errors for alphabet construction and lookups.
var (
	// ErrEmpty indicates an alphabet without symbols.
	ErrEmpty = errors.New("alphabet: no symbols")

	// ErrDuplicateSymbol indicates the same rune listed twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrUnknownSymbol indicates a lookup of a rune that is not in the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("alphabet: index out of range")
)

// MinBase is the smallest usable branch count. MinBaseFor never reports
// less, even for messages that only use index 0.
const MinBase = 2

// Preset symbol sets.
const (
	// HexSymbols is the sixteen-symbol set of the reference demonstration.
	HexSymbols = "0123456789ABCDEF"

	// BinarySymbols is the two-symbol set used for bit strings.
	BinarySymbols = "01"
)
