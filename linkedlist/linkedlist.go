// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linkedlist implements [collections.List] as a doubly linked chain
// of nodes.
//
// Appending and removal of a located node are O(1), without shifting. Indexed
// access walks from whichever end of the chain is closer, so is bounded by
// Len()/2 hops.
//
// Nodes live in an arena owned by the list and link to each other by handle
// rather than by pointer. A removed node has its value and links cleared
// before its slot is reused, so no unreachable element is retained.
package linkedlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/collections"
)

// A List is a [collections.List] backed by a doubly linked chain of nodes,
// which it exclusively owns. It is not safe for concurrent use.
type List[T any] struct {
	arena      arena[T]
	head, tail handle
	n          int

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
	c := config{log: logging.NoLog{}}
	for _, o := range opts {
		o(&c)
	}
	return &List[T]{
		arena:  newArena[T](c.capacity),
		head:   none,
		tail:   none,
		equal:  equal,
		config: c,
	}
}

// Of returns a list holding `xs`, in order.
func Of[T comparable](xs ...T) *List[T] {
	l := New[T](WithCapacity(len(xs)))
	for _, x := range xs {
		l.Add(x)
	}
	return l
}

// From returns a list holding the elements of `c`, in its iteration order. A
// nil `c` results in an empty list.
func From[T comparable](c collections.Collection[T], opts ...Option) *List[T] {
	l := New[T](opts...)
	if collections.IsNil(c) {
		return l
	}
	for v := range c.Values() {
		l.Add(v)
	}
	return l
}

func (l *List[T]) node(h handle) *node[T] {
	return l.arena.at(h)
}

func (l *List[T]) alloc(v T, prev, next handle) handle {
	before := l.arena.cap()
	h := l.arena.alloc(v, prev, next)
	if after := l.arena.cap(); after != before {
		l.config.log.Debug("Grew list node storage",
			zap.Int("from", before),
			zap.Int("to", after),
			zap.Int("len", l.n),
		)
	}
	return h
}

// nodeAt returns the handle of the i'th node, which MUST exist. It walks
// backwards from the tail if `i` is in the second half of the list, otherwise
// forwards from the head.
func (l *List[T]) nodeAt(i int) handle {
	if i > l.n>>1 {
		h := l.tail
		for j := l.n - 1; j > i; j-- {
			h = l.node(h).prev
		}
		return h
	}
	h := l.head
	for range i {
		h = l.node(h).next
	}
	return h
}

// linkBefore splices a new node holding `v` immediately before `at`, or after
// the tail if `at` is [none].
func (l *List[T]) linkBefore(v T, at handle) {
	prev := l.tail
	if at != none {
		prev = l.node(at).prev
	}
	h := l.alloc(v, prev, at)

	if prev == none {
		l.head = h
	} else {
		l.node(prev).next = h
	}
	if at == none {
		l.tail = h
	} else {
		l.node(at).prev = h
	}
	l.n++
}

// unlink removes the node from the chain, releasing it, and returns its value.
func (l *List[T]) unlink(h handle) T {
	nd := l.node(h)
	v, prev, next := nd.value, nd.prev, nd.next

	if prev == none {
		l.head = next
	} else {
		l.node(prev).next = next
	}
	if next == none {
		l.tail = prev
	} else {
		l.node(next).prev = prev
	}

	l.arena.release(h)
	l.n--
	return v
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.n
}

// IsEmpty reports whether l.Len() == 0.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// Add appends `v` after the tail. It always returns true.
func (l *List[T]) Add(v T) bool {
	l.linkBefore(v, none)
	return true
}

// Insert places `v` at index `i` by splicing it in before the node currently
// at `i`. The index MUST be in `[0,Len()]`, with `Len()` equivalent to
// [List.Add].
func (l *List[T]) Insert(i int, v T) error {
	if err := collections.CheckPosition(i, l.n); err != nil {
		return err
	}
	l.linkBefore(v, l.positionAt(i))
	return nil
}

// positionAt returns the handle of the node before which an element inserted
// at index `i` is linked.
func (l *List[T]) positionAt(i int) handle {
	if i == l.n {
		return none
	}
	return l.nodeAt(i)
}

// AddAll appends all elements of `c`, in its iteration order. It returns false
// if `c` is empty. Adding a list to itself is supported.
func (l *List[T]) AddAll(c collections.Collection[T]) (bool, error) {
	return l.InsertAll(l.n, c)
}

// InsertAll places all elements of `c`, in its iteration order, at index `i`.
// The index MUST be in `[0,Len()]`.
func (l *List[T]) InsertAll(i int, c collections.Collection[T]) (bool, error) {
	if err := collections.NilCollection("InsertAll", c); err != nil {
		return false, err
	}
	if err := collections.CheckPosition(i, l.n); err != nil {
		return false, err
	}
	xs := c.ToArray()
	if len(xs) == 0 {
		return false, nil
	}
	at := l.positionAt(i)
	for _, x := range xs {
		l.linkBefore(x, at)
	}
	return true, nil
}

// Get returns the element at index `i`, which MUST be in `[0,Len())`.
func (l *List[T]) Get(i int) (T, error) {
	if err := collections.CheckIndex(i, l.n); err != nil {
		var zero T
		return zero, err
	}
	return l.node(l.nodeAt(i)).value, nil
}

// Set replaces the element at index `i`, which MUST be in `[0,Len())`, and
// returns the element it replaced.
func (l *List[T]) Set(i int, v T) (T, error) {
	if err := collections.CheckIndex(i, l.n); err != nil {
		var zero T
		return zero, err
	}
	nd := l.node(l.nodeAt(i))
	prev := nd.value
	nd.value = v
	return prev, nil
}

// Front returns the first element, if any.
func (l *List[T]) Front() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.node(l.head).value, true
}

// Back returns the last element, if any.
func (l *List[T]) Back() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.node(l.tail).value, true
}

// RemoveAt removes and returns the element at index `i`, which MUST be in
// `[0,Len())`.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if err := collections.CheckIndex(i, l.n); err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(l.nodeAt(i)), nil
}

// Remove unlinks every element equal to `v` in a single pass and returns the
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

func (l *List[T]) removeFunc(del func(T) bool) int {
	var removed int
	for h := l.head; h != none; {
		nd := l.node(h)
		next := nd.next
		if del(nd.value) {
			l.unlink(h)
			removed++
		}
		h = next
	}
	return removed
}

// IndexOf returns the index of the first element equal to `v`, or -1 if there
// is none.
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for h := l.head; h != none; h = l.node(h).next {
		if l.equal(l.node(h).value, v) {
			return i
		}
		i++
	}
	return -1
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

// Clear detaches the value and both links of every node in the chain before
// emptying the list. Node storage is retained for reuse.
func (l *List[T]) Clear() {
	for h := l.head; h != none; {
		nd := l.node(h)
		next := nd.next
		*nd = node[T]{prev: none, next: none}
		h = next
	}
	l.config.log.Debug("Cleared list", zap.Int("nodes", l.n))

	l.arena.reset()
	l.head, l.tail = none, none
	l.n = 0
}

// ToArray returns a newly allocated slice of the list's elements.
func (l *List[T]) ToArray() []T {
	out := make([]T, 0, l.n)
	for h := l.head; h != none; h = l.node(h).next {
		out = append(out, l.node(h).value)
	}
	return out
}

// Clone returns an independent list, sharing no nodes, with equal elements
// and configuration.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		arena:  newArena[T](l.n),
		head:   none,
		tail:   none,
		equal:  l.equal,
		config: l.config,
	}
	for h := l.head; h != none; h = l.node(h).next {
		c.linkBefore(l.node(h).value, none)
	}
	return c
}

// Copy is equivalent to [List.Clone], returning a [collections.Collection].
func (l *List[T]) Copy() collections.Collection[T] {
	return l.Clone()
}

// String formats the list's elements as a slice would be.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
