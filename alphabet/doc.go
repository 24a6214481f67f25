// Package alphabet maps symbols to branch indices and back.
//
// An Alphabet is an ordered set of distinct runes; a symbol's index is its
// position. The codec uses the index as the root branch to take at each
// step, so the alphabet also decides the smallest base a message needs:
// one more than the largest index it uses.
//
// Alphabets are immutable values built once with New (or the Hex / Binary
// presets) and passed explicitly to whoever needs them. There is no
// package-level symbol table, so codecs with different alphabets never
// interfere.
//
//	a := alphabet.Hex()          // "0123456789ABCDEF"
//	i, _ := a.IndexOf('C')       // 12
//	b, _ := a.MinBaseFor("1A0")  // 11
package alphabet
