// Package sorted implements a homogeneous array kept in ascending
// comparator order at all observable times. Insertion and lookup use
// binary search; duplicate keys are fully supported, with first/last
// index queries returning the true boundaries of a tie run.
package sorted

import (
	"iter"
	"slices"

	"github.com/dagropp/go-dast/array"
	"github.com/dagropp/go-dast/compare"
	"github.com/dagropp/go-dast/errors"
	"github.com/dagropp/go-dast/typetag"
)

// SortedArray maintains elements of one declared tag in non-descending
// order under its comparator. Mutation happens only through Add and
// RemoveRange, so no transient order violation survives a public call.
// The comparator is assumed to be a strict weak ordering over the
// elements actually present; an inconsistent comparator yields an
// undefined order, not a crash. Not safe for concurrent use.
type SortedArray struct {
	tag   typetag.Tag
	cmp   compare.Func
	elems []any
}

// New creates a sorted array under the default comparator for the given
// tag: numeric subtraction for Number, lexicographic for String,
// stringified lexicographic otherwise. The initial items are validated
// for homogeneity before any is inserted (all-or-nothing), then each is
// inserted via Add in the given order, so the input order never affects
// the final order.
func New(tag typetag.Tag, items ...any) (*SortedArray, error) {
	return NewWithCompare(tag, nil, items...)
}

// NewWithCompare creates a sorted array under a caller-supplied
// comparator. A nil cmp selects the default comparator for the tag.
func NewWithCompare(tag typetag.Tag, cmp compare.Func, items ...any) (*SortedArray, error) {
	if cmp == nil {
		cmp = compare.ForTag(tag)
	}

	arr := &SortedArray{tag: tag, cmp: cmp}
	if err := errors.Validate(tag, items); err != nil {
		return nil, err
	}

	if _, err := arr.Add(items...); err != nil {
		return nil, err
	}

	return arr, nil
}

// Tag returns the declared element tag.
func (s *SortedArray) Tag() typetag.Tag {
	return s.tag
}

// Len returns the number of elements.
func (s *SortedArray) Len() int {
	return len(s.elems)
}

// At returns the element at the given index. A negative index counts
// back from the end. The second result is false when the index is out
// of range.
func (s *SortedArray) At(index int) (any, bool) {
	if index < 0 {
		index += len(s.elems)
	}

	if index < 0 || index >= len(s.elems) {
		return nil, false
	}

	return s.elems[index], true
}

// Values returns a copy of the elements in sorted order. The backing
// sequence is never exposed directly, so callers cannot break the order
// invariant.
func (s *SortedArray) Values() []any {
	return slices.Clone(s.elems)
}

// Add inserts each item, in argument order, at its binary-search
// insertion index over the current contents, so later items in the same
// call observe earlier ones already in place. An item ranking equal to
// existing elements lands after the whole existing run, making
// repeated-key insertion order stable (FIFO among ties). Items are
// validated against the declared tag before any is inserted; a
// TypeMismatch leaves the array unchanged. Returns the new length.
func (s *SortedArray) Add(items ...any) (int, error) {
	if err := errors.Validate(s.tag, items); err != nil {
		return len(s.elems), err
	}

	for _, item := range items {
		s.elems = slices.Insert(s.elems, s.insertionIndex(item, 0, len(s.elems)), item)
	}

	return len(s.elems), nil
}

// IndexOf returns the first index within [fromIndex, end) holding a
// value equal to element, or -1. The comparator only steers the binary
// search into the tie run; the match itself is decided by the
// containers' native equality. The walk left across adjacent equal
// duplicates costs O(k) in the run length.
func (s *SortedArray) IndexOf(element any, fromIndex ...int) int {
	from := s.rebase(fromIndex)

	found := s.search(element, from, len(s.elems)-1)
	if found < 0 {
		return -1
	}

	for found > from && typetag.Equal(s.elems[found-1], element) {
		found--
	}

	if typetag.Equal(s.elems[found], element) {
		return found
	}

	return -1
}

// LastIndexOf returns the last index within [fromIndex, end) holding a
// value equal to element, or -1. Symmetric to IndexOf, scanning right.
func (s *SortedArray) LastIndexOf(element any, fromIndex ...int) int {
	from := s.rebase(fromIndex)

	found := s.search(element, from, len(s.elems)-1)
	if found < 0 {
		return -1
	}

	for found < len(s.elems)-1 && typetag.Equal(s.elems[found+1], element) {
		found++
	}

	if typetag.Equal(s.elems[found], element) {
		return found
	}

	return -1
}

// Includes reports whether the binary search locates an occurrence
// ranking equal to element within [fromIndex, end).
func (s *SortedArray) Includes(element any, fromIndex ...int) bool {
	return s.search(element, s.rebase(fromIndex), len(s.elems)-1) >= 0
}

// RemoveRange deletes deleteCount elements starting at start, defaulting
// to the rest of the array, and returns the removed elements. A negative
// start counts back from the end. There is no insertion path through
// this call: arbitrary replacement would violate the order invariant.
func (s *SortedArray) RemoveRange(start int, deleteCount ...int) []any {
	lo := clampIndex(start, len(s.elems))

	count := len(s.elems) - lo
	if len(deleteCount) > 0 {
		count = min(max(deleteCount[0], 0), len(s.elems)-lo)
	}

	removed := slices.Clone(s.elems[lo : lo+count])
	s.elems = slices.Delete(s.elems, lo, lo+count)

	return removed
}

// Filter returns a new sorted array with this array's tag and
// comparator holding the elements satisfying pred. Filtering a sorted
// sequence keeps it sorted, so the result needs no re-sort.
func (s *SortedArray) Filter(pred func(any) bool) *SortedArray {
	kept := make([]any, 0, len(s.elems))

	for _, elem := range s.elems {
		if pred(elem) {
			kept = append(kept, elem)
		}
	}

	return &SortedArray{tag: s.tag, cmp: s.cmp, elems: kept}
}

// Slice returns a copy of the sub-range [start, end) with the same tag
// and comparator. Negative indices count back from the end; end
// defaults to the length.
func (s *SortedArray) Slice(start int, end ...int) *SortedArray {
	lo := clampIndex(start, len(s.elems))

	hi := len(s.elems)
	if len(end) > 0 {
		hi = clampIndex(end[0], len(s.elems))
	}

	hi = max(hi, lo)

	return &SortedArray{tag: s.tag, cmp: s.cmp, elems: slices.Clone(s.elems[lo:hi])}
}

// SetCompareFunc replaces the comparator and performs a full re-sort
// under it, restoring the order invariant for the new order. The
// re-sort is stable, so elements ranking equal under the new comparator
// keep their relative order. Returns the array.
func (s *SortedArray) SetCompareFunc(cmp compare.Func) *SortedArray {
	if cmp == nil {
		cmp = compare.ForTag(s.tag)
	}

	s.cmp = cmp
	slices.SortStableFunc(s.elems, cmp)

	return s
}

// Map applies transform to every element and re-derives the tag of the
// results. A homogeneous result comes back as a new sorted array under
// the default comparator for the discovered tag (the original comparator
// is not reusable against a different element type) and the second
// result is nil. A mixed result comes back as an untyped plain array,
// unordered, with the first result nil.
func (s *SortedArray) Map(transform func(any) any) (*SortedArray, *array.Array) {
	mapped := make([]any, len(s.elems))
	for i, elem := range s.elems {
		mapped[i] = transform(elem)
	}

	return wrap(mapped)
}

// FlatMap applies transform to every element, concatenates the results
// and re-derives their tag, with the same homogeneous/mixed outcome as
// Map.
func (s *SortedArray) FlatMap(transform func(any) []any) (*SortedArray, *array.Array) {
	flat := make([]any, 0, len(s.elems))
	for _, elem := range s.elems {
		flat = append(flat, transform(elem)...)
	}

	return wrap(flat)
}

// Flat flattens nested []any values and nested arrays up to depth
// levels and re-derives their tag, with the same homogeneous/mixed
// outcome as Map.
func (s *SortedArray) Flat(depth int) (*SortedArray, *array.Array) {
	return wrap(flatten(s.elems, depth))
}

// Seq iterates the elements in sorted order. The array must not be
// mutated while iterating.
func (s *SortedArray) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, elem := range s.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Backward iterates the elements in reverse sorted order. The array
// must not be mutated while iterating.
func (s *SortedArray) Backward() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := len(s.elems) - 1; i >= 0; i-- {
			if !yield(s.elems[i]) {
				return
			}
		}
	}
}

// Entries iterates index/element pairs in sorted order. The array must
// not be mutated while iterating.
func (s *SortedArray) Entries() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, elem := range s.elems {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// insertionIndex narrows [lo, hi) until the bounds meet, never
// early-returning on equality, yielding the slot just past every
// element comparing <= target. O(log n) deep.
func (s *SortedArray) insertionIndex(target any, lo, hi int) int {
	if lo >= hi {
		return lo
	}

	mid := (lo + hi) / 2
	if s.cmp(s.elems[mid], target) <= 0 {
		return s.insertionIndex(target, mid+1, hi)
	}

	return s.insertionIndex(target, lo, mid)
}

// search returns some index within [lo, hi] whose element ranks equal
// to target under the comparator, not necessarily the first or last;
// callers refine. Returns -1 when the range empties. O(log n) deep.
func (s *SortedArray) search(target any, lo, hi int) int {
	if hi < lo {
		return -1
	}

	mid := (lo + hi) / 2

	switch c := s.cmp(s.elems[mid], target); {
	case c == 0:
		return mid
	case c > 0:
		return s.search(target, lo, mid-1)
	default:
		return s.search(target, mid+1, hi)
	}
}

// rebase resolves an optional fromIndex onto the full array: absent
// means 0 and a negative value counts back from the end, clamped at 0.
// Searches run on the suffix view but always report full-array indices.
func (s *SortedArray) rebase(fromIndex []int) int {
	if len(fromIndex) == 0 {
		return 0
	}

	from := fromIndex[0]
	if from < 0 {
		from = max(from+len(s.elems), 0)
	}

	return from
}

// wrap re-derives the tag of transformed elements: homogeneous results
// become a sorted array under the default comparator for the discovered
// tag, mixed results an untyped plain array.
func wrap(elems []any) (*SortedArray, *array.Array) {
	tag, ok := typetag.Common(elems...)
	if !ok {
		return nil, array.Untyped(elems...)
	}

	arr := &SortedArray{tag: tag, cmp: compare.ForTag(tag)}
	_, _ = arr.Add(elems...)

	return arr, nil
}

func flatten(elems []any, depth int) []any {
	flat := make([]any, 0, len(elems))

	for _, elem := range elems {
		if depth > 0 {
			switch inner := elem.(type) {
			case []any:
				flat = append(flat, flatten(inner, depth-1)...)
				continue
			case *array.Array:
				flat = append(flat, flatten(inner.Values(), depth-1)...)
				continue
			case *SortedArray:
				flat = append(flat, flatten(inner.elems, depth-1)...)
				continue
			}
		}

		flat = append(flat, elem)
	}

	return flat
}

// clampIndex resolves a possibly negative index and clamps it into
// [0, length].
func clampIndex(index, length int) int {
	if index < 0 {
		index += length
	}

	return min(max(index, 0), length)
}
