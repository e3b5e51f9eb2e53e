// Package set implements a uniqueness-enforcing container with the same
// element-type discipline as the other containers in this module.
// Uniqueness is determined by a hash function bucketing values, with
// collisions resolved by the containers' native equality.
package set

import (
	"fmt"
	"iter"
	"slices"

	"facette.io/natsort"
	"github.com/dagropp/go-dast/compare"
	"github.com/dagropp/go-dast/errors"
	"github.com/dagropp/go-dast/hashing"
	"github.com/dagropp/go-dast/typetag"
)

// Set stores at most one copy of each value under a declared element
// tag fixed at construction. Not safe for concurrent use.
type Set struct {
	tag     typetag.Tag
	hash    hashing.HashFunc
	buckets map[uint64][]any
	size    int
}

// New creates a set declared with the given tag, hashing with XXH3.
// It fails with a TypeMismatch when the initial items are not
// homogeneous of that tag; no set is constructed in that case.
func New(tag typetag.Tag, items ...any) (*Set, error) {
	return NewWithHash(tag, hashing.XXH3, items...)
}

// NewWithHash creates a set using the provided hash function to bucket
// values.
func NewWithHash(tag typetag.Tag, hash hashing.HashFunc, items ...any) (*Set, error) {
	set := &Set{tag: tag, hash: hash, buckets: make(map[uint64][]any)}
	if err := errors.Validate(tag, items); err != nil {
		return nil, err
	}

	if err := set.AddAll(items...); err != nil {
		return nil, err
	}

	return set, nil
}

// Tag returns the declared element tag.
func (s *Set) Tag() typetag.Tag {
	return s.tag
}

// Size returns the number of values in the set.
func (s *Set) Size() int {
	return s.size
}

// Add inserts a value. Adding a value already present is a no-op. Fails
// with a TypeMismatch when the value's tag differs from the declared
// tag, leaving the set unchanged.
func (s *Set) Add(value any) error {
	if err := errors.Validate(s.tag, []any{value}); err != nil {
		return err
	}

	key, err := s.hash(value)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]
	for _, existing := range bucket {
		if typetag.Equal(existing, value) {
			return nil
		}
	}

	s.buckets[key] = append(bucket, value)
	s.size++

	return nil
}

// AddAll inserts multiple values. All values are validated against the
// declared tag before any is inserted, so a TypeMismatch leaves the set
// unchanged.
func (s *Set) AddAll(values ...any) error {
	if err := errors.Validate(s.tag, values); err != nil {
		return err
	}

	for _, value := range values {
		if err := s.Add(value); err != nil {
			return err
		}
	}

	return nil
}

// Has reports whether an equal value exists in the set.
func (s *Set) Has(value any) (bool, error) {
	key, err := s.hash(value)
	if err != nil {
		return false, err
	}

	for _, existing := range s.buckets[key] {
		if typetag.Equal(existing, value) {
			return true, nil
		}
	}

	return false, nil
}

// Remove deletes an equal value from the set. Removing a value that is
// not present is a no-op.
func (s *Set) Remove(value any) error {
	key, err := s.hash(value)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]
	for i, existing := range bucket {
		if typetag.Equal(existing, value) {
			bucket = slices.Delete(bucket, i, i+1)

			if len(bucket) == 0 {
				delete(s.buckets, key)
			} else {
				s.buckets[key] = bucket
			}

			s.size--

			return nil
		}
	}

	return nil
}

// Clear removes all values from the set.
func (s *Set) Clear() {
	s.buckets = make(map[uint64][]any)
	s.size = 0
}

// Entries returns all values as a slice. The order is not guaranteed.
func (s *Set) Entries() []any {
	entries := make([]any, 0, s.size)
	for _, bucket := range s.buckets {
		entries = append(entries, bucket...)
	}

	return entries
}

// SortedEntries returns all values sorted under the default comparator
// for the declared tag.
func (s *Set) SortedEntries() []any {
	entries := s.Entries()
	slices.SortStableFunc(entries, compare.ForTag(s.tag))

	return entries
}

// NaturalSortedEntries returns all values sorted in natural string
// order, where digit runs compare numerically (e.g. "file2" before
// "file10"). Only String-tag sets support it.
func (s *Set) NaturalSortedEntries() ([]string, error) {
	if s.tag != typetag.String {
		return nil, fmt.Errorf("%w: natural order requires %s elements, set holds %s",
			errors.ErrTypeMismatch, typetag.String, s.tag)
	}

	entries := make([]string, 0, s.size)
	for _, value := range s.Entries() {
		entries = append(entries, value.(string))
	}

	natsort.Sort(entries)

	return entries, nil
}

// Seq iterates the values in no guaranteed order. The set must not be
// mutated while iterating.
func (s *Set) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, bucket := range s.buckets {
			for _, value := range bucket {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// Union returns a new set containing all values from both sets. The
// result keeps this set's tag and hash function, so the other set's
// values must match this set's tag.
func (s *Set) Union(other *Set) (*Set, error) {
	union, err := NewWithHash(s.tag, s.hash, s.Entries()...)
	if err != nil {
		return nil, err
	}

	if err := union.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return union, nil
}

// Intersection returns a new set containing only values present in both
// sets.
func (s *Set) Intersection(other *Set) (*Set, error) {
	intersection, err := NewWithHash(s.tag, s.hash)
	if err != nil {
		return nil, err
	}

	for _, value := range s.Entries() {
		contains, err := other.Has(value)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := intersection.Add(value); err != nil {
				return nil, err
			}
		}
	}

	return intersection, nil
}

// Difference returns a new set containing the values of this set that
// are not present in the other set.
func (s *Set) Difference(other *Set) (*Set, error) {
	difference, err := NewWithHash(s.tag, s.hash)
	if err != nil {
		return nil, err
	}

	for _, value := range s.Entries() {
		contains, err := other.Has(value)
		if err != nil {
			return nil, err
		}

		if !contains {
			if err := difference.Add(value); err != nil {
				return nil, err
			}
		}
	}

	return difference, nil
}
