// SPDX-License-Identifier: MIT
// Package mat: centralized validation guards.
//
// Purpose:
//   - Provide a single, canonical source of truth for the nil and shape
//     checks shared by every element-wise operation.
//   - Keep the kernels minimal by delegating guard logic here.
//
// Note:
//   - All checks are pure, deterministic and allocate nothing on the
//     success path.
//   - Guards run before any mutation, so a failed operation leaves both
//     operands untouched.

package mat

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix (wrapped) when m == nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Dense[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or a *DimensionMismatchError carrying both operand shapes;
// op names the attempted operation for the rendered message.
// Complexity: O(1).
func ValidateSameShape[T any](op string, a, b *Dense[T]) error {
	// Execute comparisons
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return &DimensionMismatchError{
			Op:    op,
			ARows: a.Rows(), ACols: a.Cols(),
			BRows: b.Rows(), BCols: b.Cols(),
		}
	}

	return nil
}
