// Package mat_test contains unit tests for the centralized validators.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/mat"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers both branches of the nil guard.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, mat.ValidateNotNil[int](nil), mat.ErrNilMatrix) // nil is rejected

	m, err := mat.New[int](1, 1)              // any live matrix
	require.NoError(t, err)                   // construction succeeds
	require.NoError(t, mat.ValidateNotNil(m)) // non-nil is accepted
}

// TestValidateSameShape accepts equal shapes and rejects each axis mismatch.
func TestValidateSameShape(t *testing.T) {
	a, err := mat.New[int](2, 3) // reference shape
	require.NoError(t, err)

	same, err := mat.New[int](2, 3) // identical shape
	require.NoError(t, err)
	require.NoError(t, mat.ValidateSameShape("addition", a, same)) // equal shapes pass

	rows, err := mat.New[int](4, 3) // row mismatch
	require.NoError(t, err)
	require.ErrorIs(t, mat.ValidateSameShape("addition", a, rows), mat.ErrDimensionMismatch)

	cols, err := mat.New[int](2, 5) // column mismatch
	require.NoError(t, err)
	require.ErrorIs(t, mat.ValidateSameShape("subtraction", a, cols), mat.ErrDimensionMismatch)
}
