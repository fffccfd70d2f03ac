// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

// A buffer is an owned, contiguous block of slots of which only the first
// [buffer.len] are in use. Slots in [len, cap) always hold the zero value so
// that they retain no references.
type buffer[T any] struct {
	slots []T // len(slots) MUST == cap(slots)
	n     int // 0 <= n <= len(slots)
}

func newBuffer[T any](capacity int) buffer[T] {
	return buffer[T]{slots: make([]T, capacity)}
}

// cap returns the capacity of the buffer.
func (b *buffer[T]) cap() int {
	return len(b.slots)
}

// len returns the number of slots in use.
func (b *buffer[T]) len() int {
	return b.n
}

// inUse returns the slots in use. The returned slice aliases the buffer and
// MUST NOT be retained.
func (b *buffer[T]) inUse() []T {
	return b.slots[:b.n]
}

// at returns the i'th element. The returned value is undefined if `i` is not
// in `[0,b.len())`.
func (b *buffer[T]) at(i int) T {
	return b.slots[i]
}

func (b *buffer[T]) set(i int, x T) {
	b.slots[i] = x
}

// hasCap reports whether `k` more elements fit without growing.
func (b *buffer[T]) hasCap(k int) bool {
	return b.cap()-b.n >= k
}

// push appends `x`, which MUST fit; see [buffer.hasCap].
func (b *buffer[T]) push(x T) {
	b.slots[b.n] = x
	b.n++
}

// insert places `xs` at index `i` after shifting `[i,len)` to the right by
// len(xs). There MUST be capacity for all of `xs` and `i` MUST be in
// `[0,b.len()]`.
func (b *buffer[T]) insert(i int, xs ...T) {
	k := len(xs)
	copy(b.slots[i+k:b.n+k], b.slots[i:b.n])
	copy(b.slots[i:i+k], xs)
	b.n += k
}

// removeAt removes and returns the i'th element, shifting `(i,len)` one slot
// to the left and clearing the vacated slot.
func (b *buffer[T]) removeAt(i int) T {
	x := b.slots[i]
	copy(b.slots[i:b.n-1], b.slots[i+1:b.n])
	b.n--
	var zero T
	b.slots[b.n] = zero
	return x
}

// truncate reduces the length to `n`, clearing all vacated slots.
func (b *buffer[T]) truncate(n int) {
	clear(b.slots[n:b.n])
	b.n = n
}

// resize replaces the backing slots with a new allocation of capacity `n`,
// which MUST be >= b.len(). It is O(b.len()).
func (b *buffer[T]) resize(n int) {
	s := make([]T, n)
	copy(s, b.inUse())
	b.slots = s
}

// clone returns a buffer with capacity equal to b.len(), holding the same
// elements but sharing no storage.
func (b *buffer[T]) clone() buffer[T] {
	c := newBuffer[T](b.n)
	copy(c.slots, b.inUse())
	c.n = b.n
	return c
}
