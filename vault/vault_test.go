package vault_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rifc/alphabet"
	"github.com/katalvlaran/rifc/rifc"
	"github.com/katalvlaran/rifc/vault"
)

// openTemp opens a fresh vault in a per-test directory.
func openTemp(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := vault.Open(filepath.Join(t.TempDir(), "rifc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	return v
}

func sampleRecord(label string) vault.Record {
	return vault.Record{
		Label:    label,
		Real:     0.6922194823,
		Imag:     -0.7597375023,
		Base:     16,
		Count:    4,
		Alphabet: alphabet.HexSymbols,
	}
}

// TestPutGet assigns an ID and timestamp and reads them back.
func TestPutGet(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)

	stored, err := v.Put(ctx, sampleRecord("note"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	got, err := v.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "note", got.Label)
	assert.Equal(t, stored.Encoded(), got.Encoded(), "REAL columns keep float64 bits")
	assert.Equal(t, 16, got.Base)
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, alphabet.HexSymbols, got.Alphabet)
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
}

// TestPut_KeepsGivenIDAndTime respects caller-supplied fields.
func TestPut_KeepsGivenIDAndTime(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)

	rec := sampleRecord("fixed")
	rec.ID = uuid.MustParse("6f1c2a8e-3b7d-4e0a-9c55-1d2e3f405162")
	rec.CreatedAt = time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	stored, err := v.Put(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, stored.ID)

	got, err := v.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	_, err = v.Put(ctx, rec)
	assert.Error(t, err, "duplicate primary key")
}

// TestPut_Invalid rejects records that could never decode.
func TestPut_Invalid(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)

	bad := map[string]func(*vault.Record){
		"nan real":       func(r *vault.Record) { r.Real = math.NaN() },
		"inf imag":       func(r *vault.Record) { r.Imag = math.Inf(-1) },
		"base 1":         func(r *vault.Record) { r.Base = 1 },
		"negative count": func(r *vault.Record) { r.Count = -1 },
		"no alphabet":    func(r *vault.Record) { r.Alphabet = "" },
	}
	for name, mutate := range bad {
		rec := sampleRecord(name)
		mutate(&rec)
		_, err := v.Put(ctx, rec)
		assert.ErrorIs(t, err, vault.ErrInvalidRecord, name)
	}

	all, err := v.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestGetDelete_NotFound covers missing IDs.
func TestGetDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)

	_, err := v.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, vault.ErrNotFound)
	assert.ErrorIs(t, v.Delete(ctx, uuid.New()), vault.ErrNotFound)
	_, err = v.Find(ctx, "nothing")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

// TestListFindDelete checks ordering, limits and removal.
func TestListFindDelete(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i, label := range []string{"a", "b", "a"} {
		rec := sampleRecord(label)
		rec.Count = i + 1
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		stored, err := v.Put(ctx, rec)
		require.NoError(t, err)
		ids = append(ids, stored.ID)
	}

	all, err := v.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{ids[2], ids[1], ids[0]}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	two, err := v.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	newestA, err := v.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, ids[2], newestA.ID)
	assert.Equal(t, 3, newestA.Count)

	require.NoError(t, v.Delete(ctx, ids[2]))
	newestA, err = v.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, ids[0], newestA.ID)
}

// TestReopen_Persists closes and reopens the same file.
func TestReopen_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	v, err := vault.Open(path)
	require.NoError(t, err)
	stored, err := v.Put(ctx, sampleRecord("keep"))
	require.NoError(t, err)
	require.NoError(t, v.Close())

	v, err = vault.Open(path)
	require.NoError(t, err)
	defer v.Close()
	got, err := v.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Label)
}

// TestStoreThenDecodeFromVault stores a ciphertext, reads it back and
// decodes it with the same secrets.
func TestStoreThenDecodeFromVault(t *testing.T) {
	ctx := context.Background()
	v := openTemp(t)
	key := complex(-0.75, 0.09)

	codec, err := rifc.New(alphabet.Hex(), key, 0, 16, nil)
	require.NoError(t, err)
	z, err := codec.Store("C0DE")
	require.NoError(t, err)

	stored, err := v.Put(ctx, vault.Record{
		Label: "word", Real: real(z), Imag: imag(z),
		Base: codec.Base(), Count: 4, Alphabet: codec.Alphabet().String(),
	})
	require.NoError(t, err)

	rec, err := v.Get(ctx, stored.ID)
	require.NoError(t, err)
	alpha, err := alphabet.New(rec.Alphabet)
	require.NoError(t, err)
	msg, err := rifc.Load(alpha, 0, key, rec.Encoded(), rec.Base, rec.Count, nil)
	require.NoError(t, err)
	assert.Equal(t, "C0DE", msg)
}
