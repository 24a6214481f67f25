package vault

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rifc/roots"
)

// Sentinel errors for vault operations.
var (
	// ErrNotFound indicates that no record matches the ID or label.
	ErrNotFound = errors.New("vault: record not found")

	// ErrInvalidRecord indicates a record that could never be decoded:
	// non-finite coordinate, base < 2, negative count or empty alphabet.
	ErrInvalidRecord = errors.New("vault: invalid record")
)

// Record is one stored ciphertext with its public decode parameters.
type Record struct {
	ID        uuid.UUID
	Label     string
	Real      float64
	Imag      float64
	Base      int
	Count     int
	Alphabet  string
	CreatedAt time.Time
}

// Encoded returns the stored coordinate.
func (r Record) Encoded() complex128 {
	return complex(r.Real, r.Imag)
}

// validate reports why r cannot be stored, or nil.
func (r Record) validate() error {
	switch {
	case !roots.IsFinite(r.Encoded()):
		return ErrInvalidRecord
	case r.Base < 2:
		return ErrInvalidRecord
	case r.Count < 0:
		return ErrInvalidRecord
	case r.Alphabet == "":
		return ErrInvalidRecord
	}

	return nil
}
