// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide the element-wise arithmetic surface: Add/Sub building a
//     fresh result, AddInPlace/SubInPlace mutating the left operand.
//   - Keep the tight loops in two private kernels shared by all four
//     public wrappers.
//
// Determinism & Performance:
//   - Single flat pass over the row-major backing slices, 0..n-1.
//   - Binary forms allocate exactly once (the result); in-place forms
//     allocate nothing.
//   - All shape checks run before the first element is touched, so a
//     failed operation never leaves a partially written operand.

package mat

// opAdd and opSub name the operations inside DimensionMismatchError
// messages ("cannot perform addition between ...").
const (
	opAdd = "addition"
	opSub = "subtraction"
)

// elementwise validates a and b, then builds out[i] = f(a[i], b[i]) into
// a fresh Dense. Time O(r*c), space O(r*c).
func elementwise[T Number](op string, a, b *Dense[T], f func(T, T) T) (*Dense[T], error) {
	// Validate operand presence using the centralized guards.
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	// Validate shape compatibility before any allocation.
	if err := ValidateSameShape(op, a, b); err != nil {
		return nil, err
	}

	// Allocate the result; shapes already validated, New cannot fail.
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}

	// Single flat loop over the backing slices, deterministic 0..n-1.
	for idx := range res.data {
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// elementwiseInPlace validates a and b, then folds b into a with
// a[i] = f(a[i], b[i]). No allocation. Time O(r*c), space O(1).
func elementwiseInPlace[T Number](op string, a, b *Dense[T], f func(T, T) T) error {
	// Validate operand presence.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Validate shape compatibility before the first write; on failure a
	// is left exactly as it was.
	if err := ValidateSameShape(op, a, b); err != nil {
		return err
	}

	// Fold b into a over the flat buffers.
	for idx := range a.data {
		a.data[idx] = f(a.data[idx], b.data[idx])
	}

	return nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Inputs are never mutated.
//
// Errors: ErrNilMatrix (nil operand); *DimensionMismatchError carrying
// both shapes (matches ErrDimensionMismatch via errors.Is).
// Complexity: O(r*c) time and space.
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh
// Dense. Inputs are never mutated.
//
// Errors: ErrNilMatrix, *DimensionMismatchError (see Add).
// Complexity: O(r*c) time and space.
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(opSub, a, b, func(x, y T) T { return x - y })
}

// AddInPlace performs A += B element-wise, mutating a and allocating
// nothing. The dimension check fires before any write, so on error a is
// unchanged.
//
// Errors: ErrNilMatrix, *DimensionMismatchError (see Add).
// Complexity: O(r*c) time, O(1) space.
func AddInPlace[T Number](a, b *Dense[T]) error {
	return elementwiseInPlace(opAdd, a, b, func(x, y T) T { return x + y })
}

// SubInPlace performs A -= B element-wise, mutating a and allocating
// nothing. Same error contract as AddInPlace.
// Complexity: O(r*c) time, O(1) space.
func SubInPlace[T Number](a, b *Dense[T]) error {
	return elementwiseInPlace(opSub, a, b, func(x, y T) T { return x - y })
}
