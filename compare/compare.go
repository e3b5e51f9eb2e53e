// Package compare provides ordering comparators for runtime-typed values.
package compare

import (
	"fmt"
	"reflect"
	"strings"

	"facette.io/natsort"
	"github.com/dagropp/go-dast/typetag"
)

// Func orders two values: negative when a ranks before b, zero when they
// rank equally, positive when a ranks after b. A Func must be a strict
// weak ordering over the values it is actually given; an inconsistent
// comparator yields an undefined order, not a crash.
type Func func(a, b any) int

// Numbers orders two numeric values by subtraction. It accepts any
// built-in or named integer or floating-point type.
func Numbers(a, b any) int {
	switch diff := toFloat(a) - toFloat(b); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// Strings orders two string values lexicographically.
func Strings(a, b any) int {
	return strings.Compare(toString(a), toString(b))
}

// Lexical orders two values by comparing their fmt-stringified forms
// lexicographically. This is the default ordering for tags without a
// native order.
func Lexical(a, b any) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Natural orders two string values in natural sort order, where digit
// runs compare numerically (e.g. "file2" ranks before "file10").
func Natural(a, b any) int {
	left, right := toString(a), toString(b)
	if left == right {
		return 0
	}

	if natsort.Compare(left, right) {
		return -1
	}

	return 1
}

// ForTag returns the default comparator for an element tag: numeric
// subtraction for Number, lexicographic for String, stringified
// lexicographic for everything else.
func ForTag(tag typetag.Tag) Func {
	switch tag {
	case typetag.Number:
		return Numbers
	case typetag.String:
		return Strings
	default:
		return Lexical
	}
}

func toFloat(value any) float64 {
	switch number := value.(type) {
	case int:
		return float64(number)
	case int8:
		return float64(number)
	case int16:
		return float64(number)
	case int32:
		return float64(number)
	case int64:
		return float64(number)
	case uint:
		return float64(number)
	case uint8:
		return float64(number)
	case uint16:
		return float64(number)
	case uint32:
		return float64(number)
	case uint64:
		return float64(number)
	case float32:
		return float64(number)
	case float64:
		return number
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return 0
	}
}

func toString(value any) string {
	if str, ok := value.(string); ok {
		return str
	}

	return fmt.Sprint(value)
}
