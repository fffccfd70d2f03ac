// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

import "iter"

// An Iterator is a cursor over a [List], created by [List.Iterator].
//
// The iterator observes the list's length at creation and does not snapshot
// its elements. Mutating the list while the iterator is in use is undefined
// behaviour: elements may be skipped, repeated or zero, and Next may panic.
type Iterator[T any] struct {
	l    *List[T]
	i, n int
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, n: l.buf.len()}
}

// Next returns the next element and true, or the zero value and false once
// the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.i >= it.n {
		var zero T
		return zero, false
	}
	x := it.l.buf.at(it.i)
	it.i++
	return x, true
}

// Values returns a lazy sequence of the list's elements. The same mutation
// caveats as for [Iterator] apply.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range l.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// All returns a lazy sequence of the list's indices and elements. The same
// mutation caveats as for [Iterator] apply.
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
