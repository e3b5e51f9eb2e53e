// Package errors defines the error kinds shared by every container in
// this module. All containers validate before they mutate, so a caller
// either observes a fully applied effect or an unchanged container.
package errors

import (
	"errors"
	"fmt"

	"github.com/dagropp/go-dast/typetag"
)

var (
	// ErrTypeMismatch is the sentinel wrapped by every TypeMismatch.
	// Use errors.Is(err, ErrTypeMismatch) to detect the kind without
	// inspecting the diagnostics.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrCapacityViolation is the sentinel wrapped by every
	// CapacityViolation.
	ErrCapacityViolation = errors.New("capacity violation")
)

// TypeMismatch reports one or more values whose tag differs from a
// container's declared element type. It carries the offending values
// and the expected tag for diagnostics.
type TypeMismatch struct {
	Expected typetag.Tag
	Values   []any
}

// NewTypeMismatch creates a TypeMismatch for the given expected tag and
// offending values.
func NewTypeMismatch(expected typetag.Tag, values ...any) *TypeMismatch {
	return &TypeMismatch{Expected: expected, Values: values}
}

func (e *TypeMismatch) Error() string {
	if len(e.Values) == 1 {
		return fmt.Sprintf("%v: expected %s, got %s (%#v)",
			ErrTypeMismatch, e.Expected, typetag.Of(e.Values[0]), e.Values[0])
	}

	return fmt.Sprintf("%v: expected %s, got %d offending values",
		ErrTypeMismatch, e.Expected, len(e.Values))
}

func (e *TypeMismatch) Unwrap() error {
	return ErrTypeMismatch
}

// CapacityViolation reports an attempt to lower a bounded container's
// capacity below its current element count.
type CapacityViolation struct {
	Capacity int
	Size     int
}

func (e *CapacityViolation) Error() string {
	return fmt.Sprintf("%v: capacity %d is below current size %d",
		ErrCapacityViolation, e.Capacity, e.Size)
}

func (e *CapacityViolation) Unwrap() error {
	return ErrCapacityViolation
}

// Validate checks values against a container's declared element tag and
// returns a TypeMismatch carrying every offending value, or nil when
// all values match. The Any tag disables the check. Containers call
// this before mutating, so a failed call leaves them unchanged.
func Validate(expected typetag.Tag, values []any) error {
	if expected == typetag.Any {
		return nil
	}

	var offending []any

	for _, value := range values {
		if !typetag.Matches(expected, value) {
			offending = append(offending, value)
		}
	}

	if len(offending) > 0 {
		return NewTypeMismatch(expected, offending...)
	}

	return nil
}
