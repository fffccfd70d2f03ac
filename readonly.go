// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collections

import "fmt"

// ReadOnly returns a view of `l` that rejects all mutation with
// [ErrUnsupported]. The view reflects later changes made directly to `l`.
//
// Add, Remove and Clear have no error result so they panic with the error
// instead. Copy returns an independent, mutable copy of `l`.
func ReadOnly[T any](l List[T]) List[T] {
	if ro, ok := l.(readOnly[T]); ok {
		return ro
	}
	return readOnly[T]{l}
}

type readOnly[T any] struct {
	List[T]
}

var _ List[int] = readOnly[int]{}

func unsupported(op string) error {
	return fmt.Errorf("%w: %s on read-only list", ErrUnsupported, op)
}

func (readOnly[T]) Add(T) bool { panic(unsupported("Add")) }

func (readOnly[T]) Insert(int, T) error { return unsupported("Insert") }

func (readOnly[T]) AddAll(Collection[T]) (bool, error) { return false, unsupported("AddAll") }

func (readOnly[T]) InsertAll(int, Collection[T]) (bool, error) {
	return false, unsupported("InsertAll")
}

func (readOnly[T]) Set(int, T) (T, error) {
	var zero T
	return zero, unsupported("Set")
}

func (readOnly[T]) RemoveAt(int) (T, error) {
	var zero T
	return zero, unsupported("RemoveAt")
}

func (readOnly[T]) Remove(T) int { panic(unsupported("Remove")) }

func (readOnly[T]) RemoveAll(Collection[T]) (bool, error) {
	return false, unsupported("RemoveAll")
}

func (readOnly[T]) Clear() {
	panic(unsupported("Clear"))
}
