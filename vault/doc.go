// Package vault keeps encoded coordinates in a SQLite file so they can be
// decoded later.
//
// A Record holds the ciphertext (the encoded coordinate) and the public
// parameters Load needs besides the secrets: base, symbol count and the
// alphabet. The key and origin are never written; without them a record
// is just a point on the plane.
//
//	v, err := vault.Open("data/rifc.db")
//	rec, err := v.Put(ctx, vault.Record{Label: "note", Real: re, Imag: im, Base: 16, Count: 4, Alphabet: "0123456789ABCDEF"})
//	got, err := v.Get(ctx, rec.ID)
package vault
