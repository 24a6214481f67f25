package rifc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rifc/alphabet"
)

const (
	// seedDet keeps randomized sweeps reproducible.
	seedDet = int64(42)

	// refBits34 is the first 34 bits of the reference bit pattern.
	refBits34 = "1101111101111111011111111111111111"
)

// refKey is the Julia constant of the reference demonstration.
var refKey = complex(-0.75, 0.09)

// bitIndices maps a '0'/'1' string to indices.
func bitIndices(t *testing.T, bits string) []int {
	t.Helper()
	idx, err := alphabet.Binary().Indices(bits)
	require.NoError(t, err)

	return idx
}
