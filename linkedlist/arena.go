// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

// A handle addresses a node in an [arena].
type handle int

// none is the nil handle.
const none handle = -1

type node[T any] struct {
	value      T
	prev, next handle
}

// An arena owns the storage of every node in a single [List]. Released slots
// are reused before the arena grows.
type arena[T any] struct {
	nodes []node[T]
	free  []handle // LIFO
}

func newArena[T any](capacity int) arena[T] {
	return arena[T]{nodes: make([]node[T], 0, capacity)}
}

// at returns a pointer to the node addressed by `h`. The pointer is
// invalidated by the next call to [arena.alloc].
func (a *arena[T]) at(h handle) *node[T] {
	return &a.nodes[h]
}

// alloc stores a new node and returns its handle.
func (a *arena[T]) alloc(v T, prev, next handle) handle {
	n := node[T]{value: v, prev: prev, next: next}
	if k := len(a.free); k > 0 {
		h := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[h] = n
		return h
	}
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes) - 1)
}

// release clears the node's value and links, and returns its slot for reuse.
func (a *arena[T]) release(h handle) {
	a.nodes[h] = node[T]{prev: none, next: none}
	a.free = append(a.free, h)
}

// cap returns the number of nodes that can be stored without reallocating.
func (a *arena[T]) cap() int {
	return cap(a.nodes)
}

// live returns the number of allocated nodes that haven't been released.
func (a *arena[T]) live() int {
	return len(a.nodes) - len(a.free)
}

// reset releases every node at once, retaining the arena's capacity.
func (a *arena[T]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}
