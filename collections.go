// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collections defines the ordered-sequence contracts implemented by
// the [arraylist] and [linkedlist] packages, along with the errors they return.
//
// None of the implementations are safe for concurrent use. A list is owned by a
// single goroutine, or access to it MUST be serialised by the caller. Mutating
// a list while iterating over it is undefined behaviour.
//
// [arraylist]: https://pkg.go.dev/github.com/ava-labs/collections/arraylist
// [linkedlist]: https://pkg.go.dev/github.com/ava-labs/collections/linkedlist
package collections

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

var (
	// ErrOutOfRange is returned when an index argument is outside of the
	// range accepted by a positional operation.
	ErrOutOfRange = errors.New("index out of range")
	// ErrPrecondition is returned when a required argument is nil or can
	// otherwise never be satisfied.
	ErrPrecondition = errors.New("precondition violated")
	// ErrTypeMismatch is returned by [ToArray] if an element can't be stored
	// in the destination's element type.
	ErrTypeMismatch = errors.New("element type mismatch")
	// ErrUnsupported is returned by operations that a particular [List] does
	// not support, e.g. mutation of a [ReadOnly] view.
	ErrUnsupported = errors.New("unsupported operation")
)

// A Collection is a group of elements that can be counted, searched, copied
// and iterated over.
type Collection[T any] interface {
	// Len returns the number of elements.
	Len() int
	IsEmpty() bool
	// Clear removes all elements.
	Clear()
	Contains(T) bool
	// ContainsAll reports whether every element of the argument is contained
	// in the receiver. A nil argument is treated as empty.
	ContainsAll(Collection[T]) bool
	// Copy returns a collection with equal contents that shares no mutable
	// state with the receiver.
	Copy() Collection[T]
	// ToArray returns a newly allocated slice holding exactly Len() elements
	// in iteration order.
	ToArray() []T
	// Values returns a lazy, single-pass sequence of the elements.
	Values() iter.Seq[T]
}

// A List is an insertion-ordered, index-addressable [Collection] that permits
// duplicates. Valid indices are always the contiguous range [0, Len()).
type List[T any] interface {
	Collection[T]

	// Add appends the element and reports whether the list changed.
	Add(T) bool
	// Insert places the element at index i, shifting all subsequent elements
	// to the right. An index equal to Len() is equivalent to Add.
	Insert(i int, v T) error
	// AddAll appends all elements of the argument, in its iteration order,
	// and reports whether the list changed.
	AddAll(Collection[T]) (bool, error)
	// InsertAll is the bulk equivalent of Insert.
	InsertAll(i int, c Collection[T]) (bool, error)
	Get(i int) (T, error)
	// Set replaces the element at index i, returning the previous value.
	Set(i int, v T) (T, error)
	// IndexOf returns the index of the first element equal to v, or -1.
	IndexOf(v T) int
	// RemoveAt removes and returns the element at index i, shifting all
	// subsequent elements to the left.
	RemoveAt(i int) (T, error)
	// Remove removes every element equal to v and returns the number removed.
	Remove(v T) int
	// RemoveAll removes every element contained in the argument and reports
	// whether the list changed.
	RemoveAll(Collection[T]) (bool, error)
	// All returns a lazy, single-pass sequence of index-element pairs.
	All() iter.Seq2[int, T]
}

// CheckIndex returns an [ErrOutOfRange] error unless 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, n)
	}
	return nil
}

// CheckPosition returns an [ErrOutOfRange] error unless 0 <= i <= n, i.e. `i`
// is a valid insertion point.
func CheckPosition(i, n int) error {
	if i < 0 || i > n {
		return fmt.Errorf("%w: insertion index %d with length %d", ErrOutOfRange, i, n)
	}
	return nil
}

// IsNil reports whether `c` is nil, either as an interface or as a nil pointer
// held by a non-nil interface, e.g. a nil *arraylist.List[T].
func IsNil[T any](c Collection[T]) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NilCollection returns an [ErrPrecondition] error, describing the operation,
// if `c` is nil as defined by [IsNil].
func NilCollection[T any](op string, c Collection[T]) error {
	if IsNil(c) {
		return fmt.Errorf("%w: nil collection passed to %s", ErrPrecondition, op)
	}
	return nil
}
