// Package mat provides a minimal dense 2-D container generic over its
// element type — row-major storage, bounds-checked access, and
// element-wise arithmetic.
//
// What you get:
//
//   - Dense[T]: a fixed-shape rectangular grid backed by one flat slice
//   - Fill / Set / At: total fill, bounds-checked single-cell access
//   - Add / Sub: element-wise arithmetic returning a fresh result
//   - AddInPlace / SubInPlace: the compound forms, mutating the left operand
//   - Print / Fprint: capability-gated textual output with a call-site
//     diagnostic when the element type cannot be rendered as text
//
// Design notes:
//
//   - Storage is exclusively owned: Clone and the binary operators return
//     independent copies, nothing aliases.
//   - All hard failures are sentinel errors (errors.go) matched with
//     errors.Is; shape mismatches additionally carry both operand shapes
//     via DimensionMismatchError.
//   - The arithmetic surface is gated by the Number constraint; the
//     container itself accepts any element type, which is why printing is
//     a runtime capability check rather than a compile-time bound.
//
// Quick example:
//
//	a, _ := mat.New[int](2, 2)
//	a.Fill(1)
//	b, _ := mat.New[int](2, 2)
//	b.Fill(2)
//	c, _ := mat.Add(a, b) // [[3, 3], [3, 3]]
//	c.Print()
//
// There is no concurrency support: a Dense is owned by whichever scope
// holds it, with no internal locking.
package mat
