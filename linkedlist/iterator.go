// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

import "iter"

// An Iterator is a forward cursor over a [List], created by [List.Iterator].
//
// The iterator observes the list's length at creation and yields at most that
// many elements. Mutating the list while the iterator is in use is undefined
// behaviour: elements may be skipped, repeated or zero, and Next may panic.
type Iterator[T any] struct {
	l    *List[T]
	h    handle
	left int
}

// Iterator returns a cursor positioned before the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, h: l.head, left: l.n}
}

// Next returns the next element and true, or the zero value and false once
// the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.left == 0 || it.h == none {
		var zero T
		return zero, false
	}
	nd := it.l.node(it.h)
	it.h = nd.next
	it.left--
	return nd.value, true
}

// Values returns a lazy sequence of the list's elements, from head to tail.
// The same mutation caveats as for [Iterator] apply.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// All returns a lazy sequence of the list's indices and elements, from head
// to tail. The same mutation caveats as for [Iterator] apply.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iterator()
		for i := 0; ; i++ {
			x, ok := it.Next()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence of the list's indices and elements, from
// tail to head, following the links in reverse. The same mutation caveats as
// for [Iterator] apply.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		h := l.tail
		for i := l.n - 1; i >= 0 && h != none; i-- {
			nd := l.node(h)
			h = nd.prev
			if !yield(i, nd.value) {
				return
			}
		}
	}
}
