// Package rifc implements a reverse-iteration fractal codec: it folds a
// symbol sequence into one complex coordinate and unfolds it again.
//
// 🚀 How does it work?
//
//	Store starts at an origin z₀ and, for every symbol s with index i,
//	takes the i-th base-th root of (z − key):
//
//	  z ← Root(z − key, i, base)
//
//	Each step is one branch of the inverse of the Julia map z ↦ zᵇ + key.
//	Load runs that map forward from the encoded coordinate. At each step
//	it recomputes zᵇ + key and asks which root branch of (that − key)
//	gives back the current z; that branch is the symbol. Symbols come out
//	newest first, so Load fills its result back to front.
//
//	For base 2 the branch is simply the sign of Re(z): the principal
//	square root never has a negative real part.
//
// ✨ Key features:
//   - Codec: immutable (alphabet, key, origin, base, options) bundle, safe
//     for concurrent use
//   - Store / Load / StoreIndices / LoadIndices for one-off calls
//   - no silent fallbacks: unknown symbols, too-small bases, unmatched
//     branches and overflow are all errors, and a failed Load returns
//     nothing
//   - optional per-step trace sink (TraceFunc), with a zap adapter
//
// ⚙️ Usage:
//
//	codec, err := rifc.New(alphabet.Hex(), complex(-0.75, 0.09), 0, 16, nil)
//	z, err := codec.Store("C0FFEE")
//	msg, err := codec.Load(z, 6) // "C0FFEE"
//
// Limits:
//
//	Load amplifies rounding error by roughly base·|z|^(base−1) per step, so
//	the depth that survives double precision shrinks as the base grows:
//	dozens of symbols in base 2, a handful in base 16. This is not a cipher
//	in any cryptographic sense; the key, origin, base and count are all
//	needed to decode, but nothing resists analysis.
//
// Complexity: Store O(n), Load O(n) for base 2 and O(n·base) otherwise.
package rifc
