// SPDX-License-Identifier: MIT

// Package mat: type constraints for the arithmetic surface.
// The container itself is generic over any element type; only the
// element-wise operations require addition and subtraction, so the
// Number bound lives on those functions, not on Dense.
package mat

// Number is the union of element types the element-wise operations
// accept: every built-in numeric kind, including complex, plus any type
// whose underlying type is one of them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}
