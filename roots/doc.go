// Package roots enumerates and searches the n-th roots of complex values.
//
// 🚀 What is it for?
//
//	Every complex number w ≠ 0 has exactly `base` distinct base-th roots.
//	They share one radius |w|^(1/base) and are spaced 2π/base apart on the
//	circle of that radius. Root picks one of them by branch index; Find
//	answers the inverse question: which branch of a value reproduces a
//	given root?
//
// ✨ Key features:
//   - Root(w, branch, base)         : principal angle + branch offset
//   - Find(w, target, base, eps)    : lowest branch within eps, per axis
//   - PowInt(z, n)                  : exact-as-possible integer power
//   - Equal / EqualComplex / IsFinite: shared tolerance & overflow guards
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rifc/roots"
//
//	r := roots.Root(-4, 1, 2)              // ≈ -2i
//	b, err := roots.Find(-4, r, 2, 1e-9)   // b == 1
//
// Branch order:
//
//	Branch 0 is the principal root, whose angle is Phase(w)/base with Phase
//	in [-π, π]. Branch k adds k·2π/base. Find scans branches in ascending
//	order and returns the first match, so a tie always resolves to the
//	lowest index.
//
// Complexity:
//
//	Root, PowInt: O(1) / O(log n).  Find: O(base).
package roots
