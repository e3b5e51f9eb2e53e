// Package array implements a growable array restricted to a single
// semantic element type. Mutating operations enforce the declared tag;
// transforms re-derive the tag of their result and degrade to an
// untyped array when the result is no longer homogeneous.
package array

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/dagropp/go-dast/compare"
	"github.com/dagropp/go-dast/errors"
	"github.com/dagropp/go-dast/typetag"
)

// Array wraps a native slice and a declared element tag fixed at
// construction. It is not safe for concurrent use.
type Array struct {
	tag   typetag.Tag
	elems []any
}

// New creates an array declared with the given tag. It fails with a
// TypeMismatch when the initial items are non-empty and not homogeneous
// of that tag; no array is constructed in that case.
func New(tag typetag.Tag, items ...any) (*Array, error) {
	if err := errors.Validate(tag, items); err != nil {
		return nil, err
	}

	return &Array{tag: tag, elems: slices.Clone(items)}, nil
}

// Untyped creates an array with type checks disabled. Transforms whose
// results break homogeneity degrade to this form.
func Untyped(items ...any) *Array {
	return &Array{tag: typetag.Any, elems: slices.Clone(items)}
}

// Tag returns the declared element tag.
func (a *Array) Tag() typetag.Tag {
	return a.tag
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at the given index. A negative index counts
// back from the end. The second result is false when the index is out
// of range.
func (a *Array) At(index int) (any, bool) {
	if index < 0 {
		index += len(a.elems)
	}

	if index < 0 || index >= len(a.elems) {
		return nil, false
	}

	return a.elems[index], true
}

// Values returns a copy of the backing elements in order.
func (a *Array) Values() []any {
	return slices.Clone(a.elems)
}

// Push appends items at the end and returns the new length. Fails with
// a TypeMismatch, leaving the array unchanged, when any item's tag
// differs from the declared tag.
func (a *Array) Push(items ...any) (int, error) {
	if err := errors.Validate(a.tag, items); err != nil {
		return len(a.elems), err
	}

	a.elems = append(a.elems, items...)

	return len(a.elems), nil
}

// Pop removes and returns the last element. The second result is false
// when the array is empty.
func (a *Array) Pop() (any, bool) {
	if len(a.elems) == 0 {
		return nil, false
	}

	last := a.elems[len(a.elems)-1]
	a.elems = a.elems[:len(a.elems)-1]

	return last, true
}

// Shift removes and returns the first element. The second result is
// false when the array is empty.
func (a *Array) Shift() (any, bool) {
	if len(a.elems) == 0 {
		return nil, false
	}

	first := a.elems[0]
	a.elems = slices.Delete(a.elems, 0, 1)

	return first, true
}

// Unshift prepends items at the front, preserving their argument order,
// and returns the new length. Fails with a TypeMismatch, leaving the
// array unchanged, when any item's tag differs from the declared tag.
func (a *Array) Unshift(items ...any) (int, error) {
	if err := errors.Validate(a.tag, items); err != nil {
		return len(a.elems), err
	}

	a.elems = slices.Insert(a.elems, 0, items...)

	return len(a.elems), nil
}

// Set replaces the element at the given index. The first result is
// false when the index is out of range; a wrong-typed value fails with
// a TypeMismatch and leaves the array unchanged.
func (a *Array) Set(index int, value any) (bool, error) {
	if index < 0 || index >= len(a.elems) {
		return false, nil
	}

	if err := errors.Validate(a.tag, []any{value}); err != nil {
		return false, err
	}

	a.elems[index] = value

	return true, nil
}

// IndexOf returns the first index at or after fromIndex holding a value
// equal to element, or -1. A negative fromIndex counts back from the
// end.
func (a *Array) IndexOf(element any, fromIndex ...int) int {
	for i := normFrom(fromIndex, len(a.elems)); i < len(a.elems); i++ {
		if typetag.Equal(a.elems[i], element) {
			return i
		}
	}

	return -1
}

// LastIndexOf returns the last index at or after fromIndex holding a
// value equal to element, or -1.
func (a *Array) LastIndexOf(element any, fromIndex ...int) int {
	from := normFrom(fromIndex, len(a.elems))

	for i := len(a.elems) - 1; i >= from; i-- {
		if typetag.Equal(a.elems[i], element) {
			return i
		}
	}

	return -1
}

// Includes reports whether an equal value occurs at or after fromIndex.
func (a *Array) Includes(element any, fromIndex ...int) bool {
	return a.IndexOf(element, fromIndex...) != -1
}

// Slice returns a copy of the sub-range [start, end) with the same tag.
// Negative indices count back from the end; end defaults to the length.
func (a *Array) Slice(start int, end ...int) *Array {
	lo, hi := normRange(start, end, len(a.elems))

	return &Array{tag: a.tag, elems: slices.Clone(a.elems[lo:hi])}
}

// Splice removes deleteCount elements starting at start, inserts the
// given items in their place and returns the removed elements. Inserted
// items are validated against the declared tag before any mutation.
func (a *Array) Splice(start, deleteCount int, items ...any) ([]any, error) {
	if err := errors.Validate(a.tag, items); err != nil {
		return nil, err
	}

	lo := clampIndex(start, len(a.elems))
	count := min(max(deleteCount, 0), len(a.elems)-lo)

	removed := slices.Clone(a.elems[lo : lo+count])
	a.elems = slices.Concat(a.elems[:lo], items, a.elems[lo+count:])

	return removed, nil
}

// Concat returns a new array holding this array's elements followed by
// the other arrays' elements. The result tag is re-derived and degrades
// to Any when the combined elements are not homogeneous.
func (a *Array) Concat(others ...*Array) *Array {
	combined := slices.Clone(a.elems)
	for _, other := range others {
		combined = append(combined, other.elems...)
	}

	return derive(combined)
}

// Join renders every element with fmt and concatenates them with the
// given separator.
func (a *Array) Join(sep string) string {
	parts := make([]string, len(a.elems))
	for i, elem := range a.elems {
		parts[i] = fmt.Sprint(elem)
	}

	return strings.Join(parts, sep)
}

// Reverse reverses the elements in place and returns the array.
func (a *Array) Reverse() *Array {
	slices.Reverse(a.elems)

	return a
}

// Sort orders the elements in place under cmp and returns the array.
// A nil cmp selects the default comparator for the declared tag. The
// sort is stable.
func (a *Array) Sort(cmp compare.Func) *Array {
	if cmp == nil {
		cmp = compare.ForTag(a.tag)
	}

	slices.SortStableFunc(a.elems, cmp)

	return a
}

// ForEach applies fn to every element in order.
func (a *Array) ForEach(fn func(element any, index int)) {
	for i, elem := range a.elems {
		fn(elem, i)
	}
}

// Find returns the first element satisfying pred. The second result is
// false when no element matches.
func (a *Array) Find(pred func(any) bool) (any, bool) {
	for _, elem := range a.elems {
		if pred(elem) {
			return elem, true
		}
	}

	return nil, false
}

// FindIndex returns the index of the first element satisfying pred,
// or -1.
func (a *Array) FindIndex(pred func(any) bool) int {
	return slices.IndexFunc(a.elems, pred)
}

// Every reports whether all elements satisfy pred.
func (a *Array) Every(pred func(any) bool) bool {
	for _, elem := range a.elems {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Some reports whether at least one element satisfies pred.
func (a *Array) Some(pred func(any) bool) bool {
	return slices.ContainsFunc(a.elems, pred)
}

// Map applies transform to every element and returns a new array. The
// result tag is re-derived from the transformed elements and degrades
// to Any when they are not homogeneous.
func (a *Array) Map(transform func(any) any) *Array {
	mapped := make([]any, len(a.elems))
	for i, elem := range a.elems {
		mapped[i] = transform(elem)
	}

	return derive(mapped)
}

// Filter returns a new array with this array's tag holding the elements
// satisfying pred, order preserved.
func (a *Array) Filter(pred func(any) bool) *Array {
	kept := make([]any, 0, len(a.elems))

	for _, elem := range a.elems {
		if pred(elem) {
			kept = append(kept, elem)
		}
	}

	return &Array{tag: a.tag, elems: kept}
}

// FlatMap applies transform to every element, concatenates the results
// and re-derives the result tag.
func (a *Array) FlatMap(transform func(any) []any) *Array {
	flat := make([]any, 0, len(a.elems))
	for _, elem := range a.elems {
		flat = append(flat, transform(elem)...)
	}

	return derive(flat)
}

// Flat flattens nested []any values and nested Arrays up to depth
// levels and re-derives the result tag.
func (a *Array) Flat(depth int) *Array {
	return derive(flatten(a.elems, depth))
}

// Seq iterates the elements front to back. The array must not be
// mutated while iterating.
func (a *Array) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, elem := range a.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Entries iterates index/element pairs front to back. The array must
// not be mutated while iterating.
func (a *Array) Entries() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, elem := range a.elems {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// derive wraps elements in a new array whose tag is re-derived from
// their contents, degrading to Any when they are not homogeneous.
func derive(elems []any) *Array {
	tag, ok := typetag.Common(elems...)
	if !ok {
		tag = typetag.Any
	}

	return &Array{tag: tag, elems: elems}
}

func flatten(elems []any, depth int) []any {
	flat := make([]any, 0, len(elems))

	for _, elem := range elems {
		if depth > 0 {
			switch inner := elem.(type) {
			case []any:
				flat = append(flat, flatten(inner, depth-1)...)
				continue
			case *Array:
				flat = append(flat, flatten(inner.elems, depth-1)...)
				continue
			}
		}

		flat = append(flat, elem)
	}

	return flat
}

// normFrom resolves an optional fromIndex: absent means 0 and a
// negative value counts back from the end, clamped at 0.
func normFrom(fromIndex []int, length int) int {
	if len(fromIndex) == 0 {
		return 0
	}

	from := fromIndex[0]
	if from < 0 {
		from = max(from+length, 0)
	}

	return from
}

// clampIndex resolves a possibly negative index and clamps it into
// [0, length].
func clampIndex(index, length int) int {
	if index < 0 {
		index += length
	}

	return min(max(index, 0), length)
}

func normRange(start int, end []int, length int) (int, int) {
	lo := clampIndex(start, length)

	hi := length
	if len(end) > 0 {
		hi = clampIndex(end[0], length)
	}

	return lo, max(hi, lo)
}
