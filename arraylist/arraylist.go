// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package arraylist implements [collections.List] over a contiguous,
// growable buffer.
//
// Indexed reads and writes are O(1) and appending is amortised O(1), with the
// buffer's capacity grown according to a [GrowthPolicy]. Positional insertion
// and removal shift all subsequent elements and are therefore O(n).
package arraylist

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ava-labs/collections"
	"github.com/ava-labs/collections/intmath"
)

// A List is a [collections.List] backed by a contiguous buffer, which it
// exclusively owns. It is not safe for concurrent use.
type List[T any] struct {
	buf    buffer[T]
	equal  func(a, b T) bool
	config config
}

var _ collections.List[int] = (*List[int])(nil)

// New returns an empty list that compares elements with `==`.
func New[T comparable](opts ...Option) *List[T] {
	return NewFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns an empty list that compares elements with `equal`, which
// allows for element types that aren't comparable. It panics if `equal` is
// nil.
func NewFunc[T any](equal func(a, b T) bool, opts ...Option) *List[T] {
	if equal == nil {
		panic(fmt.Errorf("%w: nil equality function", collections.ErrPrecondition))
	}
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return &List[T]{
		buf:    newBuffer[T](c.capacity),
		equal:  equal,
		config: c,
	}
}

// Of returns a list holding `xs`, in order, with capacity equal to len(xs).
func Of[T comparable](xs ...T) *List[T] {
	l := New[T](WithCapacity(len(xs)))
	for _, x := range xs {
		l.buf.push(x)
	}
	return l
}

// From returns a list holding the elements of `c`, in its iteration order. A
// nil `c` results in an empty list. Unless overridden by [WithCapacity], the
// initial capacity is exactly c.Len().
func From[T comparable](c collections.Collection[T], opts ...Option) *List[T] {
	var n int
	nilSrc := collections.IsNil(c)
	if !nilSrc {
		n = c.Len()
	}
	l := New[T](append([]Option{WithCapacity(n)}, opts...)...)
	if nilSrc {
		return l
	}
	l.Grow(n)
	for v := range c.Values() {
		l.Add(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.buf.len()
}

// Cap returns the capacity of the backing buffer.
func (l *List[T]) Cap() int {
	return l.buf.cap()
}

// IsEmpty reports whether l.Len() == 0.
func (l *List[T]) IsEmpty() bool {
	return l.buf.len() == 0
}

// ensure grows the buffer, if necessary, so it can hold `k` more elements.
func (l *List[T]) ensure(k int) error {
	if l.buf.hasCap(k) {
		return nil
	}
	need, err := intmath.CheckedAdd(l.buf.len(), k)
	if err != nil {
		return fmt.Errorf("%w: growing %d elements by %d: %v", collections.ErrPrecondition, l.buf.len(), k, err)
	}
	l.resize(max(l.config.growth(l.buf.cap(), need), need))
	return nil
}

func (l *List[T]) resize(n int) {
	l.config.log.Debug("Resizing list buffer",
		zap.Int("from", l.buf.cap()),
		zap.Int("to", n),
		zap.Int("len", l.buf.len()),
	)
	l.buf.resize(n)
}

// Grow increases the list's capacity, if necessary, to hold at least `n`
// elements without further allocation. It does not place a limit on the size
// of the list.
func (l *List[T]) Grow(n int) {
	if n > l.buf.cap() {
		l.resize(n)
	}
}

// Clip reduces the list's capacity to l.Len().
func (l *List[T]) Clip() {
	if l.buf.cap() > l.buf.len() {
		l.resize(l.buf.len())
	}
}

// Add appends `v`, growing the buffer if it is full. It only returns false if
// the list's length is already the maximum int.
func (l *List[T]) Add(v T) bool {
	if err := l.ensure(1); err != nil {
		return false
	}
	l.buf.push(v)
	return true
}

// Insert places `v` at index `i`, shifting the elements at `[i,Len())` one
// position to the right. The index MUST be in `[0,Len()]`, with `Len()`
// equivalent to [List.Add].
func (l *List[T]) Insert(i int, v T) error {
	if err := collections.CheckPosition(i, l.buf.len()); err != nil {
		return err
	}
	if err := l.ensure(1); err != nil {
		return err
	}
	l.buf.insert(i, v)
	return nil
}

// AddAll appends all elements of `c`, in its iteration order. It returns false
// if `c` is empty. Adding a list to itself is supported.
func (l *List[T]) AddAll(c collections.Collection[T]) (bool, error) {
	return l.InsertAll(l.buf.len(), c)
}

// InsertAll places all elements of `c`, in its iteration order, at index `i`,
// shifting the elements at `[i,Len())` to the right by c.Len() positions. The
// index MUST be in `[0,Len()]`.
func (l *List[T]) InsertAll(i int, c collections.Collection[T]) (bool, error) {
	if err := collections.NilCollection("InsertAll", c); err != nil {
		return false, err
	}
	if err := collections.CheckPosition(i, l.buf.len()); err != nil {
		return false, err
	}
	xs := c.ToArray()
	if len(xs) == 0 {
		return false, nil
	}
	if err := l.ensure(len(xs)); err != nil {
		return false, err
	}
	l.buf.insert(i, xs...)
	return true, nil
}

// Get returns the element at index `i`, which MUST be in `[0,Len())`.
func (l *List[T]) Get(i int) (T, error) {
	if err := collections.CheckIndex(i, l.buf.len()); err != nil {
		var zero T
		return zero, err
	}
	return l.buf.at(i), nil
}

// Set replaces the element at index `i`, which MUST be in `[0,Len())`, and
// returns the element it replaced.
func (l *List[T]) Set(i int, v T) (T, error) {
	if err := collections.CheckIndex(i, l.buf.len()); err != nil {
		var zero T
		return zero, err
	}
	prev := l.buf.at(i)
	l.buf.set(i, v)
	return prev, nil
}

// RemoveAt removes and returns the element at index `i`, which MUST be in
// `[0,Len())`, shifting all subsequent elements one position to the left.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if err := collections.CheckIndex(i, l.buf.len()); err != nil {
		var zero T
		return zero, err
	}
	return l.buf.removeAt(i), nil
}

// Remove removes every element equal to `v` in a single pass and returns the
// number of elements removed.
func (l *List[T]) Remove(v T) int {
	return l.removeFunc(func(x T) bool {
		return l.equal(x, v)
	})
}

// RemoveAll removes every element equal to at least one element of `c`. It
// returns true if any element was removed.
func (l *List[T]) RemoveAll(c collections.Collection[T]) (bool, error) {
	if err := collections.NilCollection("RemoveAll", c); err != nil {
		return false, err
	}
	other := c.ToArray()
	n := l.removeFunc(func(x T) bool {
		return slices.ContainsFunc(other, func(o T) bool {
			return l.equal(x, o)
		})
	})
	return n > 0, nil
}

// removeFunc compacts the in-use slots, dropping those for which `del` returns
// true, and returns the number dropped.
func (l *List[T]) removeFunc(del func(T) bool) int {
	s := l.buf.inUse()
	w := 0
	for _, x := range s {
		if del(x) {
			continue
		}
		s[w] = x
		w++
	}
	l.buf.truncate(w)
	return len(s) - w
}

// IndexOf returns the index of the first element equal to `v`, or -1 if there
// is none.
func (l *List[T]) IndexOf(v T) int {
	return slices.IndexFunc(l.buf.inUse(), func(x T) bool {
		return l.equal(x, v)
	})
}

// Contains reports whether any element is equal to `v`.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// ContainsAll reports whether every element of `c` is contained in the list.
// It returns true if `c` is nil or empty.
func (l *List[T]) ContainsAll(c collections.Collection[T]) bool {
	if collections.IsNil(c) {
		return true
	}
	for v := range c.Values() {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// Clear removes all elements while retaining the buffer's capacity. Use
// [List.Clip] to release it.
func (l *List[T]) Clear() {
	l.buf.truncate(0)
}

// ToArray returns a newly allocated copy of the list's elements.
func (l *List[T]) ToArray() []T {
	return slices.Clone(l.buf.inUse())
}

// Clone returns an independent list with equal elements and configuration,
// and capacity equal to l.Len().
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		buf:    l.buf.clone(),
		equal:  l.equal,
		config: l.config,
	}
}

// Copy is equivalent to [List.Clone], returning a [collections.Collection].
func (l *List[T]) Copy() collections.Collection[T] {
	return l.Clone()
}

// String formats the list's elements as a slice would be.
func (l *List[T]) String() string {
	return fmt.Sprint(l.buf.inUse())
}
