// Package typetag classifies runtime values into semantic type tags and
// checks sequences of values for homogeneity. Every type-checked
// container in this module declares one tag at construction and enforces
// it on every mutation.
package typetag

import "reflect"

// Tag is a string classifier derived from a value's runtime kind.
// Two values are "the same type" iff their tags are equal.
type Tag string

const (
	// Number covers every built-in integer and floating-point type.
	Number Tag = "Number"

	// String covers string values.
	String Tag = "String"

	// Boolean covers bool values.
	Boolean Tag = "Boolean"

	// Function covers values of function kind.
	Function Tag = "Function"

	// Array covers slices and fixed-size arrays.
	Array Tag = "Array"

	// Object covers maps and anonymous structs. Named struct types tag
	// as their own type name instead, so distinct struct types never
	// mix in one container.
	Object Tag = "Object"

	// Nil is the tag of an untyped nil value.
	Nil Tag = "Nil"

	// Any matches every value. A container declared with Any performs
	// no homogeneity enforcement; transforms whose results are no
	// longer homogeneous degrade to Any.
	Any Tag = "Any"
)

// Of returns the semantic type tag of a runtime value.
func Of(value any) Tag {
	switch value.(type) {
	case nil:
		return Nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Number
	case string:
		return String
	case bool:
		return Boolean
	}

	rt := reflect.TypeOf(value)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	switch rt.Kind() { //nolint:exhaustive
	case reflect.Func:
		return Function
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Struct:
		if name := rt.Name(); name != "" {
			return Tag(name)
		}

		return Object
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Named numeric types classify by their underlying kind.
		return Number
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	default:
		return Object
	}
}

// Matches reports whether a value satisfies the required tag.
// Any matches every value.
func Matches(tag Tag, value any) bool {
	return tag == Any || Of(value) == tag
}

// Common returns the single tag shared by all given values. A sequence
// is homogeneous iff all elements share one tag; the empty sequence has
// no determinable tag and is vacuously homogeneous, reporting Any.
func Common(values ...any) (Tag, bool) {
	if len(values) == 0 {
		return Any, true
	}

	tag := Of(values[0])

	for _, value := range values[1:] {
		if Of(value) != tag {
			return Any, false
		}
	}

	return tag, true
}

// Equal reports whether two values are equal under the containers'
// native equality: == for dynamic types that support it, deep equality
// otherwise. This is the equality used by index lookups and the set;
// comparators never decide a match, only ordering.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}

	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}
