// Package mat: capability-gated printing.
// Go has no compile-time capability gate on a method of a generic type,
// so the check is a runtime one: Printable reports whether T renders as
// text, and Print/Fprint degrade to a call-site diagnostic instead of
// emitting cells when it does not.
package mat

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
)

// stringerType is the capability interface checked by Printable.
var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// Printable reports whether values of type T support rendering as text:
// either T implements fmt.Stringer, or its kind is a built-in scalar
// (bool, the integer and float kinds, complex, string).
// Complexity: O(1).
func Printable[T any]() bool {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	// A Stringer renders itself regardless of kind.
	if rt.Implements(stringerType) || reflect.PointerTo(rt).Implements(stringerType) {
		return true
	}
	// Built-in scalar kinds have a canonical textual form.
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// fprint writes the grid to w, one line per row, cells separated by
// single spaces. When T is not printable it writes one diagnostic line
// naming the caller's file and line instead and emits no cells.
func (m *Dense[T]) fprint(w io.Writer, file string, line int) bool {
	// Capability gate: skip entirely rather than emit garbage.
	if !Printable[T]() {
		fmt.Fprintf(w, "PRINT IGNORED (%s:L%d): type %s does not support rendering as text.\n",
			file, line, reflect.TypeOf((*T)(nil)).Elem())
		return false
	}

	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				io.WriteString(w, " ") // separate values with a single space
			}
			fmt.Fprintf(w, "%v", m.data[i*m.c+j])
		}
		io.WriteString(w, "\n") // newline after each row
	}

	return true
}

// Print emits the grid to stdout, one row per line, values
// space-separated. Returns true when the grid was printed; when T lacks
// the text capability it prints nothing but a diagnostic identifying the
// call site and returns false. A zero-sized matrix of a printable type
// prints nothing and returns true.
func (m *Dense[T]) Print() bool {
	file, line := callSite()
	return m.fprint(os.Stdout, file, line)
}

// Fprint is Print with an explicit sink, for callers that want the
// output (or the diagnostic) somewhere other than stdout.
func (m *Dense[T]) Fprint(w io.Writer) bool {
	file, line := callSite()
	return m.fprint(w, file, line)
}

// callSite captures the immediate caller of Print/Fprint for the
// diagnostic message. Purely informational, never load-bearing.
func callSite() (string, int) {
	// Skip callSite itself and the exported wrapper.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return file, line
}
