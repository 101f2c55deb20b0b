// Package value defines the scalar payload carried by list and tree nodes.
//
// A Value is either a number or a string. Datasets decide which of the two a
// raw operand becomes, and the package provides the two comparison
// disciplines the engines rely on:
//
//   - LooseEqual: equality used by list search and delete-by-value, where a
//     number and its textual form compare equal.
//   - Compare: a strict total order used by sorting and by every tree
//     discipline. Numbers order before strings.
package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind tags the representation held by a Value.
type Kind uint8

const (
	// Number values hold a float64.
	Number Kind = iota
	// String values hold text.
	String
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ErrNotNumeric is returned when a numeric dataset receives text that does not
// parse as a number.
var ErrNotNumeric = errors.New("value: operand is not numeric")

// Value is an immutable scalar. The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Num returns a numeric Value.
func Num(f float64) Value { return Value{kind: Number, num: f} }

// Int returns a numeric Value holding an integer.
func Int(i int) Value { return Value{kind: Number, num: float64(i)} }

// Str returns a string Value.
func Str(s string) Value { return Value{kind: String, str: s} }

// Kind reports the representation of v.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == Number }

// Float returns the numeric payload and true for numbers. Strings that parse
// as numbers are coerced; other strings return (0, false).
func (v Value) Float() (float64, bool) {
	if v.kind == Number {
		return v.num, true
	}
	return coerce(v.str)
}

// String formats v. Integral numbers print without a fraction.
func (v Value) String() string {
	if v.kind == String {
		return v.str
	}
	if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1e15 {
		return strconv.FormatInt(int64(v.num), 10)
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// coerce mirrors loose numeric coercion of text: surrounding whitespace is
// ignored and empty text is zero. Only finite numbers coerce, so NaN and the
// infinities stay text.
func coerce(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// LooseEqual compares a and b the way list search does: two numbers compare
// numerically, two strings compare exactly, and a mixed pair compares after
// coercing the string side to a number.
func LooseEqual(a, b Value) bool {
	switch {
	case a.kind == Number && b.kind == Number:
		return a.num == b.num
	case a.kind == String && b.kind == String:
		return a.str == b.str
	case a.kind == Number:
		f, ok := coerce(b.str)
		return ok && f == a.num
	default:
		f, ok := coerce(a.str)
		return ok && f == b.num
	}
}

// Compare returns -1, 0 or +1. Numbers sort before strings; within a kind the
// natural order applies. Compare(a, b) == 0 iff a and b are identical.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind == Number {
			return -1
		}
		return 1
	}
	if a.kind == String {
		return strings.Compare(a.str, b.str)
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return 0
	}
}

// Less reports Compare(a, b) < 0.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

// Equal reports strict identity (same kind, same payload).
func Equal(a, b Value) bool { return Compare(a, b) == 0 }
