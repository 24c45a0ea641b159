// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// This file defines the package-level sentinel errors used across mat,
// plus the one structured failure value (DimensionMismatchError). All
// operations return these sentinels and tests check them via errors.Is.
// Nothing in this package panics on user-triggered error conditions.

package mat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never %w-wrapped onto each
// other; call sites add context with fmt.Errorf("ctx: %w", ErrX) so that
// errors.Is keeps matching.

var (
	// ErrBadShape is returned by New when a requested dimension is
	// negative. Zero-sized matrices are legal and never error.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// allocated grid. At and Set return this, they never panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes in an
	// element-wise operation. Returned wrapped inside a
	// *DimensionMismatchError carrying both shapes.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed to a
	// package-level operation.
	ErrNilMatrix = errors.New("mat: nil matrix")
)

// DimensionMismatchError reports an element-wise operation attempted on
// two matrices of differing shapes. It carries the operation name and
// both operand shapes so callers can render or inspect the exact
// mismatch; errors.Is(err, ErrDimensionMismatch) matches it.
type DimensionMismatchError struct {
	Op                         string // "addition" or "subtraction"
	ARows, ACols, BRows, BCols int    // operand shapes, left then right
}

// Error renders the mismatch with both operand shapes embedded.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("mat: cannot perform %s between a %dx%d matrix and a %dx%d matrix",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Is reports sentinel equivalence so errors.Is keeps working against
// ErrDimensionMismatch without unwrapping the structured value.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
